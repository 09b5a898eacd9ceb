package axsearch

import (
	"fmt"
	"strings"
)

// Direction is the order in which a search walks the tree.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// ParseDirection converts "next"/"previous" (or "forward"/"backward",
// "prev") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "next", "forward":
		return Next, nil
	case "previous", "prev", "backward":
		return Previous, nil
	default:
		return Next, fmt.Errorf("unknown direction: %q (expected next or previous)", s)
	}
}

// Criteria describes one search request. It is a plain value; the engine
// never modifies it.
type Criteria struct {
	// SearchKeys are OR-combined; the first key that matches wins.
	SearchKeys []SearchKey
	// AnchorObject bounds the search. The walk never reaches its unignored
	// parent. It must not be nil.
	AnchorObject Node
	// StartObject is the node to search after (Next) or before (Previous).
	// Nil searches the whole subtree of AnchorObject.
	StartObject Node
	Direction   Direction
	// VisibleOnly additionally requires structural matches to be on screen.
	VisibleOnly bool
	// ImmediateDescendantsOnly restricts candidates to direct children.
	ImmediateDescendantsOnly bool
	// SearchText is a case-insensitive substring filter over title,
	// description and value. Empty always passes.
	SearchText   string
	ResultsLimit int
	// StartRange anchors FindMatchingRange inside the start object. Nil
	// means the start (Next) or end (Previous) of the start object's text.
	StartRange *TextMarkerRange
}

// ValidForRangeSearch reports whether c satisfies the FindMatchingRange
// precondition: a single MisspelledWord key and a results limit of one.
func (c Criteria) ValidForRangeSearch() bool {
	return len(c.SearchKeys) == 1 && c.SearchKeys[0] == KeyMisspelledWord && c.ResultsLimit == 1
}

// start returns the explicit start object, or the anchor when there is none.
func (c Criteria) start() Node {
	if c.StartObject != nil {
		return c.StartObject
	}
	return c.AnchorObject
}

// startInAnchor reports whether the start node is the anchor or lies inside
// it. Searches from anywhere else find nothing.
func (c Criteria) startInAnchor() bool {
	start := c.start()
	return sameNode(start, c.AnchorObject) || (start != nil && start.IsDescendantOf(c.AnchorObject))
}

func (c Criteria) forward() bool {
	return c.Direction == Next
}

func (c Criteria) keyNames() []string {
	names := make([]string, len(c.SearchKeys))
	for i, k := range c.SearchKeys {
		names[i] = k.String()
	}
	return names
}
