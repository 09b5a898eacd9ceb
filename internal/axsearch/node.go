package axsearch

// ObjectID identifies a node within one accessibility tree.
type ObjectID int

// Role is the compact role code of a node ("btn", "heading", "table", ...).
type Role string

const (
	RoleArticle     Role = "article"
	RoleBlockquote  Role = "blockquote"
	RoleButton      Role = "btn"
	RoleCell        Role = "cell"
	RoleCheckbox    Role = "chk"
	RoleGroup       Role = "group"
	RoleHeading     Role = "heading"
	RoleImage       Role = "img"
	RoleInput       Role = "input"
	RoleLandmark    Role = "landmark"
	RoleLink        Role = "lnk"
	RoleList        Role = "list"
	RoleMenu        Role = "menu"
	RoleMenuItem    Role = "menuitem"
	RoleOther       Role = "other"
	RoleOutline     Role = "tree"
	RoleRadio       Role = "radio"
	RoleRadioGroup  Role = "radiogroup"
	RoleRow         Role = "row"
	RoleRowGroup    Role = "rowgroup"
	RoleScrollArea  Role = "scroll"
	RoleStaticText  Role = "txt"
	RoleTabGroup    Role = "tab"
	RoleTable       Role = "table"
	RoleToggle      Role = "toggle"
	RoleToolbar     Role = "toolbar"
	RoleWebArea     Role = "web"
	RoleWindow      Role = "window"
)

// Trait is an orthogonal yes/no property of a node. Structural traits
// describe what a node is, style traits how its text is rendered and state
// traits its current state.
type Trait int

const (
	// Structural traits.
	TraitBlockquote Trait = iota
	TraitButton
	TraitCheckbox
	TraitControl
	TraitExposable
	TraitHeading
	TraitImage
	TraitLandmark
	TraitLink
	TraitList
	TraitOutline
	TraitRadioButton
	TraitRadioGroup
	TraitRootWebArea
	TraitStaticText
	TraitTable
	TraitTextControl
	TraitWebArea

	// Style traits.
	TraitBold
	TraitItalic
	TraitUnderline
	TraitHighlighted
	TraitPlainText

	// State traits.
	TraitIgnored
	TraitOnScreen
	TraitKeyboardFocusable
	TraitLiveRegion
	TraitVisitedLink
	TraitUnvisitedLink
)

// Navigator moves around the tree. All "unignored" accessors skip nodes that
// are ignored, promoting their children into the ignored node's place.
type Navigator interface {
	ID() ObjectID
	// Parent returns the raw parent, which may itself be ignored.
	Parent() Node
	ParentUnignored() Node
	UnignoredChildren() []Node
	// Rows returns the rows of a table. Non-tables return nil.
	Rows() []Node
	PreviousSiblingUnignored() Node
	NextSiblingUnignored() Node
	IsDescendantOf(ancestor Node) bool
}

// Classifier reports a node's role and traits.
type Classifier interface {
	Role() Role
	Is(t Trait) bool
}

// Describer exposes the textual and numeric attributes used by the matcher.
type Describer interface {
	Title() string
	Description() string
	StringValue() string
	// NameAttribute is the ad-hoc radio group name. Empty means the node is a
	// group of its own.
	NameAttribute() string
	HeadingLevel() int
	BlockquoteLevel() int
	TableLevel() int
}

// Styler compares the rendering of two nodes.
type Styler interface {
	HasSameFont(other Node) bool
	HasSameFontColor(other Node) bool
	HasSameStyle(other Node) bool
}

// Node is one accessibility tree node as seen by the search engine. The
// engine never mutates nodes and only borrows them for one call.
type Node interface {
	Navigator
	Classifier
	Describer
	Styler

	// MisspellingRanges returns the misspelled ranges of the node's text in
	// ascending order.
	MisspellingRanges() []TextMarkerRange
}

// PresortedIndex is an optional capability of a root web area: it keeps
// the nodes matching some keys in the order a forward walk visits them,
// descending through SearchChildren, so a search can skip the walk.
// Nodes the walk cannot reach must be left out.
type PresortedIndex interface {
	Presorted(key SearchKey) ([]Node, bool)
}

// sameNode compares two nodes by identity. A nil node equals only nil.
func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
