package model

import "github.com/mj1618/axsearch/internal/axsearch"

// FlatElement is a node with a path breadcrumb instead of children.
type FlatElement struct {
	ID          int      `yaml:"i"                 json:"i"`
	Role        string   `yaml:"r"                 json:"r"`
	Title       string   `yaml:"t,omitempty"       json:"t,omitempty"`
	Value       string   `yaml:"v,omitempty"       json:"v,omitempty"`
	Description string   `yaml:"d,omitempty"       json:"d,omitempty"`
	Bounds      [4]int   `yaml:"b,omitempty"       json:"b,omitempty"`
	Level       int      `yaml:"level,omitempty"   json:"level,omitempty"`
	Ignored     bool     `yaml:"ignored,omitempty" json:"ignored,omitempty"`
	Traits      []string `yaml:"traits,omitempty"  json:"traits,omitempty"`
	Ref         string   `yaml:"ref,omitempty"     json:"ref,omitempty"`
	Path        string   `yaml:"p,omitempty"       json:"p,omitempty"`
}

// namedTraits are the traits listed on flattened output, in display order.
var namedTraits = []struct {
	trait axsearch.Trait
	name  string
}{
	{axsearch.TraitRootWebArea, "root-web-area"},
	{axsearch.TraitLandmark, "landmark"},
	{axsearch.TraitControl, "control"},
	{axsearch.TraitKeyboardFocusable, "focusable"},
	{axsearch.TraitLiveRegion, "live"},
	{axsearch.TraitVisitedLink, "visited"},
	{axsearch.TraitBold, "bold"},
	{axsearch.TraitItalic, "italic"},
	{axsearch.TraitUnderline, "underline"},
	{axsearch.TraitHighlighted, "highlighted"},
}

// Describe converts one node to its flat form.
func (n *Node) Describe() FlatElement {
	flat := FlatElement{
		ID:          int(n.id),
		Role:        string(n.role),
		Title:       n.el.Title,
		Value:       n.el.Value,
		Description: n.el.Description,
		Bounds:      n.el.Bounds,
		Ignored:     n.ignored,
		Ref:         n.ref,
		Path:        n.Path(),
	}
	switch n.role {
	case axsearch.RoleHeading:
		flat.Level = n.HeadingLevel()
	case axsearch.RoleBlockquote:
		flat.Level = n.bqLevel
	case axsearch.RoleTable:
		flat.Level = n.tableLevel
	}
	for _, nt := range namedTraits {
		if n.Is(nt.trait) {
			flat.Traits = append(flat.Traits, nt.name)
		}
	}
	if !n.onScreen() {
		flat.Traits = append(flat.Traits, "offscreen")
	}
	return flat
}

// Flatten lists the tree in pre-order. Ignored nodes are included only when
// withIgnored is set.
func (t *Tree) Flatten(withIgnored bool) []FlatElement {
	result := make([]FlatElement, 0, len(t.nodes))
	for _, n := range t.nodes {
		if n.ignored && !withIgnored {
			continue
		}
		result = append(result, n.Describe())
	}
	return result
}
