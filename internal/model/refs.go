package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mj1618/axsearch/internal/axsearch"
)

// ErrAmbiguousRef is returned when a partial ref matches several nodes.
var ErrAmbiguousRef = errors.New("ambiguous ref")

// slugRe matches characters that are not lowercase alphanumeric or hyphens.
var slugRe = regexp.MustCompile(`[^a-z0-9-]+`)

// slugify converts a label to a URL-safe slug: lowercase, hyphens for spaces/special chars.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = slugRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	if len(s) > 40 {
		s = strings.TrimRight(s[:40], "-")
	}
	return s
}

// bestLabel returns title, then description. Value is left out because it
// changes as the user types.
func bestLabel(el *Element) string {
	if el.Title != "" {
		return el.Title
	}
	return el.Description
}

// sectionRoles always extend the ref path of their descendants.
var sectionRoles = map[axsearch.Role]bool{
	axsearch.RoleToolbar:    true,
	axsearch.RoleMenu:       true,
	axsearch.RoleList:       true,
	axsearch.RoleTabGroup:   true,
	axsearch.RoleTable:      true,
	axsearch.RoleLandmark:   true,
	axsearch.RoleArticle:    true,
	axsearch.RoleRadioGroup: true,
}

// dialogSubroles are subroles that indicate a dialog/overlay section.
var dialogSubroles = map[string]bool{
	"AXDialog":       true,
	"AXSheet":        true,
	"AXSystemDialog": true,
}

func isSection(n *Node) bool {
	if sectionRoles[n.role] || dialogSubroles[n.el.Subrole] || landmarkSubroles[n.el.Subrole] {
		return true
	}
	return n.role == axsearch.RoleGroup && bestLabel(n.el) != ""
}

// refSegment returns the path segment a node contributes.
func refSegment(n *Node) string {
	if slug := slugify(bestLabel(n.el)); slug != "" {
		return slug
	}
	if dialogSubroles[n.el.Subrole] {
		return "dialog"
	}
	return string(n.role)
}

// hasRef reports whether a node is a plausible search result worth naming:
// controls, headings, links, and text with content.
func hasRef(n *Node) bool {
	if n.ignored {
		return false
	}
	for _, a := range n.el.Actions {
		if a == "press" {
			return true
		}
	}
	switch n.role {
	case axsearch.RoleInput, axsearch.RoleCheckbox, axsearch.RoleToggle, axsearch.RoleRadio,
		axsearch.RoleButton, axsearch.RoleLink, axsearch.RoleHeading, axsearch.RoleImage:
		return true
	case axsearch.RoleStaticText:
		return n.el.Value != "" || n.el.Title != ""
	}
	return false
}

// AssignRefs gives nodes stable path-based refs like "toolbar/search" or
// "main/results/submit". Sections contribute to the path but only result-like
// nodes get a ref. Duplicates get .1, .2 suffixes in tree order.
func (t *Tree) AssignRefs() {
	t.assignRefs(t.root, "")

	byRef := make(map[string][]*Node)
	for _, n := range t.nodes {
		if n.ref != "" {
			byRef[n.ref] = append(byRef[n.ref], n)
		}
	}
	for ref, nodes := range byRef {
		if len(nodes) <= 1 {
			continue
		}
		for i, n := range nodes {
			n.ref = fmt.Sprintf("%s.%d", ref, i+1)
		}
	}
}

func (t *Tree) assignRefs(n *Node, parentPath string) {
	childPath := parentPath
	if isSection(n) {
		childPath = joinRef(parentPath, refSegment(n))
	}
	if hasRef(n) {
		n.ref = joinRef(parentPath, refSegment(n))
	}
	for _, c := range n.children {
		t.assignRefs(c, childPath)
	}
}

func joinRef(parent, seg string) string {
	if parent == "" {
		return seg
	}
	return parent + "/" + seg
}

// FindByRef returns the node with the given ref. An exact match wins;
// otherwise the ref may be a unique "/"-separated suffix. AssignRefs must
// have been called.
func (t *Tree) FindByRef(ref string) (*Node, error) {
	var matches []*Node
	for _, n := range t.nodes {
		if n.ref == ref {
			return n, nil
		}
		if n.ref != "" && strings.HasSuffix(n.ref, "/"+ref) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: ref %q", ErrNodeNotFound, ref)
	case 1:
		return matches[0], nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%q matches:", ref)
	for _, m := range matches {
		fmt.Fprintf(&b, "\n  ref=%q id=%d %s", m.ref, m.id, m.role)
		if m.el.Title != "" {
			fmt.Fprintf(&b, " title=%q", m.el.Title)
		}
	}
	return nil, fmt.Errorf("%w %s", ErrAmbiguousRef, b.String())
}

// Resolve finds a node by ref, or by numeric ID when the target parses as
// one.
func (t *Tree) Resolve(target string) (*Node, error) {
	if id, err := strconv.Atoi(target); err == nil {
		return t.NodeByID(id)
	}
	return t.FindByRef(target)
}
