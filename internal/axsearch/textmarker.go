package axsearch

import "fmt"

// TextMarker is a position in the text of the tree: a node, that node's
// position in tree order, and a byte offset into its text.
type TextMarker struct {
	Node   ObjectID `yaml:"node"   json:"node"`
	Order  int      `yaml:"order"  json:"order"`
	Offset int      `yaml:"offset" json:"offset"`
}

// Compare orders markers by tree position, then by offset.
func (m TextMarker) Compare(o TextMarker) int {
	switch {
	case m.Order < o.Order:
		return -1
	case m.Order > o.Order:
		return 1
	case m.Offset < o.Offset:
		return -1
	case m.Offset > o.Offset:
		return 1
	}
	return 0
}

// TextMarkerRange is a half-open range [Start, End) of text.
type TextMarkerRange struct {
	Start TextMarker `yaml:"start" json:"start"`
	End   TextMarker `yaml:"end"   json:"end"`
}

// NewRange builds a range within a single node.
func NewRange(node ObjectID, order, start, end int) TextMarkerRange {
	return TextMarkerRange{
		Start: TextMarker{Node: node, Order: order, Offset: start},
		End:   TextMarker{Node: node, Order: order, Offset: end},
	}
}

// IsEmpty reports whether the range covers no text.
func (r TextMarkerRange) IsEmpty() bool {
	return r.Start.Compare(r.End) >= 0
}

// Compare orders ranges by start marker, then by end marker.
func (r TextMarkerRange) Compare(o TextMarkerRange) int {
	if c := r.Start.Compare(o.Start); c != 0 {
		return c
	}
	return r.End.Compare(o.End)
}

// Less reports whether r sorts strictly before o.
func (r TextMarkerRange) Less(o TextMarkerRange) bool { return r.Compare(o) < 0 }

// Greater reports whether r sorts strictly after o.
func (r TextMarkerRange) Greater(o TextMarkerRange) bool { return r.Compare(o) > 0 }

func (r TextMarkerRange) String() string {
	if r.Start.Node == r.End.Node {
		return fmt.Sprintf("%d[%d:%d]", r.Start.Node, r.Start.Offset, r.End.Offset)
	}
	return fmt.Sprintf("%d[%d]-%d[%d]", r.Start.Node, r.Start.Offset, r.End.Node, r.End.Offset)
}
