package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mj1618/axsearch/internal/axsearch"
)

// ErrNodeNotFound is returned when an ID or ref does not name a node.
var ErrNodeNotFound = errors.New("node not found")

// SpellChecker finds misspelled words in a piece of text, returning their
// byte ranges in ascending order.
type SpellChecker interface {
	Misspellings(text string) [][2]int
}

// TreeOptions controls how elements become a navigable tree.
type TreeOptions struct {
	// Viewport, when set, marks nodes whose bounds miss it as off screen.
	Viewport *[4]int
	// IgnoreEmptyGroups hides anonymous group/other nodes, promoting their
	// children. It is switched on automatically for web content unless Raw
	// is set.
	IgnoreEmptyGroups bool
	Raw               bool
	// Checker supplies misspellings for text nodes that carry none in the
	// tree file.
	Checker SpellChecker
}

// Tree is an immutable accessibility tree built from elements. It is safe
// for concurrent searches.
type Tree struct {
	root  *Node
	nodes []*Node // pre-order
	byID  map[axsearch.ObjectID]*Node
	opts  TreeOptions
	base  int // first sequential ID
}

// Node is one node of a Tree. It implements axsearch.Node.
type Node struct {
	tree     *Tree
	el       *Element
	id       axsearch.ObjectID
	order    int
	role     axsearch.Role
	ignored  bool
	parent   *Node
	children []*Node
	ref      string

	unignored    []axsearch.Node
	rows         []axsearch.Node
	bqLevel      int
	tableLevel   int
	rootWeb      bool
	live         []axsearch.Node
	frames       []axsearch.Node
	misspellings []axsearch.TextMarkerRange
}

var (
	_ axsearch.Node           = (*Node)(nil)
	_ axsearch.PresortedIndex = (*Node)(nil)
)

// BuildTree links elements into a Tree. Elements without an ID get their
// 1-based pre-order position. A document with several top-level elements is
// placed under a synthetic root with ID 0, and positions count from it.
func BuildTree(elements []Element, opts TreeOptions) (*Tree, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("build tree: no elements")
	}
	if !opts.Raw && HasWebContent(elements) {
		opts.IgnoreEmptyGroups = true
	}

	t := &Tree{byID: make(map[axsearch.ObjectID]*Node), opts: opts, base: 1}

	rootEl := &elements[0]
	if len(elements) > 1 {
		rootEl = &Element{Role: string(axsearch.RoleGroup), Title: "root", Children: elements}
		t.base = 0
	}

	var err error
	t.root, err = t.link(rootEl, nil, true)
	if err != nil {
		return nil, err
	}

	// Derived data is computed bottom-up once so searches never write.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := t.nodes[i]
		n.unignored = toSearchNodes(n.flatChildren())
		if n.role == axsearch.RoleTable {
			n.rows = toSearchNodes(n.collectRows())
		}
	}
	for _, n := range t.nodes {
		n.computeLevels()
		n.misspellings = n.computeMisspellings()
	}
	for _, n := range t.nodes {
		if n.rootWeb {
			n.buildIndex()
		}
	}
	return t, nil
}

func (t *Tree) link(el *Element, parent *Node, top bool) (*Node, error) {
	n := &Node{
		tree:   t,
		el:     el,
		order:  len(t.nodes),
		role:   MapRole(el.Role),
		parent: parent,
	}
	n.id = axsearch.ObjectID(el.ID)
	if el.ID == 0 {
		n.id = axsearch.ObjectID(n.order + t.base)
	}
	if _, dup := t.byID[n.id]; dup {
		return nil, fmt.Errorf("build tree: duplicate element id %d", n.id)
	}
	n.ignored = !top && (el.Ignored || (t.opts.IgnoreEmptyGroups && isEmptyGroup(*el)))
	n.rootWeb = n.role == axsearch.RoleWebArea && !hasWebAncestor(parent)

	t.nodes = append(t.nodes, n)
	t.byID[n.id] = n
	for i := range el.Children {
		child, err := t.link(&el.Children[i], n, false)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

func hasWebAncestor(n *Node) bool {
	for ; n != nil; n = n.parent {
		if n.role == axsearch.RoleWebArea {
			return true
		}
	}
	return false
}

// Root returns the top node.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes, ignored ones included.
func (t *Tree) Len() int { return len(t.nodes) }

// Nodes returns every node in pre-order.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Viewport returns the viewport the tree was built with, if any.
func (t *Tree) Viewport() *[4]int { return t.opts.Viewport }

// NodeByID looks up a node.
func (t *Tree) NodeByID(id int) (*Node, error) {
	n, ok := t.byID[axsearch.ObjectID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}
	return n, nil
}

// Element returns the element the node was built from.
func (n *Node) Element() *Element { return n.el }

// Order returns the node's pre-order position.
func (n *Node) Order() int { return n.order }

// Ref returns the path-based ref assigned by AssignRefs.
func (n *Node) Ref() string { return n.ref }

// Path returns the role breadcrumb from the root to n, e.g.
// "web > group > heading".
func (n *Node) Path() string {
	var parts []string
	for c := n; c != nil; c = c.parent {
		parts = append(parts, string(c.role))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " > ")
}

// Text returns the text misspellings are reported against: the value, or
// the title when there is no value.
func (n *Node) Text() string {
	if n.el.Value != "" {
		return n.el.Value
	}
	return n.el.Title
}

// searchNode converts to the interface without turning a nil pointer into a
// non-nil interface.
func searchNode(n *Node) axsearch.Node {
	if n == nil {
		return nil
	}
	return n
}

func toSearchNodes(nodes []*Node) []axsearch.Node {
	out := make([]axsearch.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func (n *Node) ID() axsearch.ObjectID { return n.id }

func (n *Node) Parent() axsearch.Node { return searchNode(n.parent) }

func (n *Node) parentUnignored() *Node {
	p := n.parent
	for p != nil && p.ignored {
		p = p.parent
	}
	return p
}

func (n *Node) ParentUnignored() axsearch.Node { return searchNode(n.parentUnignored()) }

// flatChildren returns the unignored children, promoting the children of
// ignored nodes into their place.
func (n *Node) flatChildren() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.ignored {
			out = append(out, c.flatChildren()...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (n *Node) UnignoredChildren() []axsearch.Node { return n.unignored }

// Rows returns the unignored rows of a table, reached through row groups
// and other containers but not through nested tables.
func (n *Node) Rows() []axsearch.Node { return n.rows }

func (n *Node) collectRows() []*Node {
	var rows []*Node
	var visit func(c *Node)
	visit = func(c *Node) {
		for _, gc := range c.children {
			switch {
			case gc.role == axsearch.RoleRow && !gc.ignored:
				rows = append(rows, gc)
			case gc.role == axsearch.RoleTable:
			default:
				visit(gc)
			}
		}
	}
	visit(n)
	return rows
}

// span locates n in the flattened child list of its unignored parent. For
// an ignored node, [begin, end) covers its promoted descendants.
func (n *Node) span() (siblings []axsearch.Node, begin, end int) {
	p := n.parentUnignored()
	if p == nil {
		return nil, -1, -1
	}
	begin, end = -1, -1
	var count int
	var visit func(c *Node)
	visit = func(c *Node) {
		if c == n {
			begin = count
		}
		if c.ignored {
			for _, gc := range c.children {
				visit(gc)
			}
		} else {
			count++
		}
		if c == n {
			end = count
		}
	}
	for _, c := range p.children {
		visit(c)
		if end >= 0 {
			break
		}
	}
	return p.unignored, begin, end
}

func (n *Node) PreviousSiblingUnignored() axsearch.Node {
	siblings, begin, _ := n.span()
	if begin <= 0 {
		return nil
	}
	return siblings[begin-1]
}

func (n *Node) NextSiblingUnignored() axsearch.Node {
	siblings, _, end := n.span()
	if end < 0 || end >= len(siblings) {
		return nil
	}
	return siblings[end]
}

func (n *Node) IsDescendantOf(ancestor axsearch.Node) bool {
	if ancestor == nil {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		if p.id == ancestor.ID() {
			return true
		}
	}
	return false
}

func (n *Node) Role() axsearch.Role { return n.role }

func (n *Node) Is(t axsearch.Trait) bool {
	el := n.el
	switch t {
	case axsearch.TraitIgnored:
		return n.ignored
	case axsearch.TraitExposable:
		return n.role == axsearch.RoleTable && (el.Exposed == nil || *el.Exposed)
	case axsearch.TraitLandmark:
		return hasRoleTrait(n.role, t) || landmarkSubroles[el.Subrole]
	case axsearch.TraitRootWebArea:
		return n.rootWeb
	case axsearch.TraitBold:
		return el.Font != nil && el.Font.Bold
	case axsearch.TraitItalic:
		return el.Font != nil && el.Font.Italic
	case axsearch.TraitUnderline:
		return el.Font != nil && el.Font.Underline
	case axsearch.TraitHighlighted:
		return el.Font != nil && el.Font.Highlight
	case axsearch.TraitPlainText:
		return n.role == axsearch.RoleStaticText && !el.Font.styled()
	case axsearch.TraitOnScreen:
		return n.onScreen()
	case axsearch.TraitKeyboardFocusable:
		return el.Focusable || el.Focused
	case axsearch.TraitLiveRegion:
		return el.Live != "" && el.Live != "off"
	case axsearch.TraitVisitedLink:
		return n.role == axsearch.RoleLink && el.Visited
	case axsearch.TraitUnvisitedLink:
		return n.role == axsearch.RoleLink && !el.Visited
	}
	return hasRoleTrait(n.role, t)
}

func hasRoleTrait(role axsearch.Role, t axsearch.Trait) bool {
	for _, rt := range roleTraits[role] {
		if rt == t {
			return true
		}
	}
	return false
}

func (n *Node) onScreen() bool {
	if n.el.Offscreen {
		return false
	}
	vp := n.tree.opts.Viewport
	if vp == nil || n.el.Bounds == [4]int{} {
		return true
	}
	return boundsIntersect(n.el.Bounds, *vp)
}

func (n *Node) Title() string         { return n.el.Title }
func (n *Node) Description() string   { return n.el.Description }
func (n *Node) StringValue() string   { return n.el.Value }
func (n *Node) NameAttribute() string { return n.el.Name }

func (n *Node) HeadingLevel() int {
	if n.role != axsearch.RoleHeading {
		return 0
	}
	return n.el.Level
}

func (n *Node) BlockquoteLevel() int { return n.bqLevel }
func (n *Node) TableLevel() int      { return n.tableLevel }

// computeLevels counts blockquote and table ancestors, n included. Parents
// come first in pre-order, so their levels are already known.
func (n *Node) computeLevels() {
	if n.parent != nil {
		n.bqLevel = n.parent.bqLevel
		n.tableLevel = n.parent.tableLevel
	}
	switch n.role {
	case axsearch.RoleBlockquote:
		n.bqLevel++
	case axsearch.RoleTable:
		n.tableLevel++
	}
}

func (n *Node) font() Font {
	if n.el.Font == nil {
		return Font{}
	}
	return *n.el.Font
}

func otherFont(other axsearch.Node) (Font, bool) {
	o, ok := other.(*Node)
	if !ok || o == nil {
		return Font{}, false
	}
	return o.font(), true
}

func (n *Node) HasSameFont(other axsearch.Node) bool {
	f, ok := otherFont(other)
	mine := n.font()
	return ok && mine.Family == f.Family && mine.Size == f.Size
}

func (n *Node) HasSameFontColor(other axsearch.Node) bool {
	f, ok := otherFont(other)
	return ok && n.font().Color == f.Color
}

func (n *Node) HasSameStyle(other axsearch.Node) bool {
	f, ok := otherFont(other)
	return ok && n.font() == f
}

func (n *Node) MisspellingRanges() []axsearch.TextMarkerRange { return n.misspellings }

// checkedRoles are the roles whose text is passed to the spell checker.
var checkedRoles = map[axsearch.Role]bool{
	axsearch.RoleStaticText: true,
	axsearch.RoleInput:      true,
	axsearch.RoleHeading:    true,
	axsearch.RoleCell:       true,
}

func (n *Node) computeMisspellings() []axsearch.TextMarkerRange {
	offsets := n.el.Misspelled
	if offsets == nil && n.tree.opts.Checker != nil && checkedRoles[n.role] && !n.ignored {
		offsets = n.tree.opts.Checker.Misspellings(n.Text())
	}
	if len(offsets) == 0 {
		return nil
	}
	size := len(n.Text())
	ranges := make([]axsearch.TextMarkerRange, 0, len(offsets))
	for _, o := range offsets {
		if o[0] < 0 || o[1] < o[0] || o[1] > size {
			continue
		}
		ranges = append(ranges, axsearch.NewRange(n.id, n.order, o[0], o[1]))
	}
	if len(ranges) == 0 {
		return nil
	}
	// Range searches scan a node's misspellings in order.
	slices.SortFunc(ranges, axsearch.TextMarkerRange.Compare)
	return ranges
}

// buildIndex fills the live region and frame index of a root web area by
// descending through the same children a forward search does.
func (n *Node) buildIndex() {
	stack := []axsearch.Node{}
	for _, c := range slices.Backward(axsearch.SearchChildren(n)) {
		stack = append(stack, c)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Is(axsearch.TraitLiveRegion) {
			n.live = append(n.live, cur)
		}
		if cur.Is(axsearch.TraitWebArea) {
			n.frames = append(n.frames, cur)
		}
		for _, c := range slices.Backward(axsearch.SearchChildren(cur)) {
			stack = append(stack, c)
		}
	}
}

// Presorted returns the live regions or nested web areas under a root web
// area in forward search order.
func (n *Node) Presorted(key axsearch.SearchKey) ([]axsearch.Node, bool) {
	if !n.rootWeb {
		return nil, false
	}
	switch key {
	case axsearch.KeyLiveRegion:
		return n.live, true
	case axsearch.KeyFrame:
		return n.frames, true
	}
	return nil, false
}
