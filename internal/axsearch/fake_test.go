package axsearch

import "strings"

// fakeNode is a minimal in-memory Node for exercising the engine without
// the model package.
type fakeNode struct {
	id       ObjectID
	order    int
	role     Role
	traits   map[Trait]bool
	title    string
	desc     string
	value    string
	name     string
	level    int
	bqLevel  int
	tblLevel int
	font     string
	color    string
	ranges   []TextMarkerRange
	parent   *fakeNode
	children []*fakeNode
	rows     []*fakeNode
}

var _ Node = (*fakeNode)(nil)

func (n *fakeNode) ID() ObjectID { return n.id }

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) ParentUnignored() Node {
	for p := n.parent; p != nil; p = p.parent {
		if !p.traits[TraitIgnored] {
			return p
		}
	}
	return nil
}

func (n *fakeNode) flatChildren() []*fakeNode {
	var out []*fakeNode
	for _, c := range n.children {
		if c.traits[TraitIgnored] {
			out = append(out, c.flatChildren()...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (n *fakeNode) UnignoredChildren() []Node {
	var out []Node
	for _, c := range n.flatChildren() {
		out = append(out, c)
	}
	return out
}

func (n *fakeNode) Rows() []Node {
	var out []Node
	for _, r := range n.rows {
		out = append(out, r)
	}
	return out
}

// span returns the index range the node occupies in its unignored parent's
// flattened child list.
func (n *fakeNode) span() (siblings []*fakeNode, begin, end int) {
	p := n.ParentUnignored()
	if p == nil {
		return nil, 0, 0
	}
	var walk func(c *fakeNode)
	begin, end = -1, -1
	walk = func(c *fakeNode) {
		if c == n {
			begin = len(siblings)
		}
		if c.traits[TraitIgnored] {
			for _, gc := range c.children {
				walk(gc)
			}
		} else {
			siblings = append(siblings, c)
		}
		if c == n {
			end = len(siblings)
		}
	}
	for _, c := range p.(*fakeNode).children {
		walk(c)
	}
	return siblings, begin, end
}

func (n *fakeNode) PreviousSiblingUnignored() Node {
	siblings, begin, _ := n.span()
	if begin <= 0 {
		return nil
	}
	return siblings[begin-1]
}

func (n *fakeNode) NextSiblingUnignored() Node {
	siblings, _, end := n.span()
	if end < 0 || end >= len(siblings) {
		return nil
	}
	return siblings[end]
}

func (n *fakeNode) IsDescendantOf(ancestor Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p.id == ancestor.ID() {
			return true
		}
	}
	return false
}

func (n *fakeNode) Role() Role                           { return n.role }
func (n *fakeNode) Is(t Trait) bool                      { return n.traits[t] }
func (n *fakeNode) Title() string                        { return n.title }
func (n *fakeNode) Description() string                  { return n.desc }
func (n *fakeNode) StringValue() string                  { return n.value }
func (n *fakeNode) NameAttribute() string                { return n.name }
func (n *fakeNode) HeadingLevel() int                    { return n.level }
func (n *fakeNode) BlockquoteLevel() int                 { return n.bqLevel }
func (n *fakeNode) TableLevel() int                      { return n.tblLevel }
func (n *fakeNode) HasSameFont(o Node) bool              { return n.font == o.(*fakeNode).font }
func (n *fakeNode) HasSameFontColor(o Node) bool         { return n.color == o.(*fakeNode).color }
func (n *fakeNode) HasSameStyle(o Node) bool             { return n.HasSameFont(o) && n.HasSameFontColor(o) }
func (n *fakeNode) MisspellingRanges() []TextMarkerRange { return n.ranges }

// fakeTree hands out sequential ids and pre-order positions.
type fakeTree struct {
	nextID ObjectID
	byName map[string]*fakeNode
}

func newFakeTree() *fakeTree {
	return &fakeTree{nextID: 1, byName: make(map[string]*fakeNode)}
}

// add creates a node under parent (nil for the root). The title doubles as
// the lookup name, so titles must be unique within a test tree.
func (t *fakeTree) add(parent *fakeNode, role Role, title string, traits ...Trait) *fakeNode {
	n := &fakeNode{id: t.nextID, role: role, title: title, parent: parent, traits: make(map[Trait]bool)}
	t.nextID++
	for _, tr := range traits {
		n.traits[tr] = true
	}
	switch role {
	case RoleHeading:
		n.traits[TraitHeading] = true
	case RoleLink:
		n.traits[TraitLink] = true
	case RoleButton:
		n.traits[TraitButton] = true
		n.traits[TraitControl] = true
	case RoleRadio:
		n.traits[TraitRadioButton] = true
	case RoleStaticText:
		n.traits[TraitStaticText] = true
	case RoleTable:
		n.traits[TraitTable] = true
		n.traits[TraitExposable] = true
	case RoleWebArea:
		n.traits[TraitWebArea] = true
	}
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	t.byName[title] = n
	t.renumber()
	return n
}

func (t *fakeTree) get(title string) *fakeNode { return t.byName[title] }

// renumber recomputes pre-order positions from the roots.
func (t *fakeTree) renumber() {
	order := 0
	var visit func(n *fakeNode)
	visit = func(n *fakeNode) {
		n.order = order
		order++
		for _, c := range n.children {
			visit(c)
		}
	}
	for _, n := range t.byName {
		if n.parent == nil {
			visit(n)
		}
	}
}

func titles(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Title()
	}
	return out
}

func joined(nodes []Node) string {
	return strings.Join(titles(nodes), ",")
}
