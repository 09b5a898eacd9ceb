// Package axsearch implements direction-aware searches over an
// accessibility tree: finding the next or previous nodes that match a set
// of search keys, and the next or previous misspelled range of text.
//
// The tree itself is supplied by the caller through the Node interface. A
// Manager keeps no state between calls, so one Manager can serve any number
// of trees, but a single tree must not be mutated while a search over it is
// running.
package axsearch

import (
	"fmt"
	"log/slog"
)

// Manager runs searches. The zero value is not usable; call NewManager.
type Manager struct {
	linkAncestors bool
	strict        bool
	logger        *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLinkAncestors makes the Link key also match descendants of links.
func WithLinkAncestors(on bool) Option {
	return func(m *Manager) { m.linkAncestors = on }
}

// WithStrictContracts makes FindMatchingRange panic when called with
// criteria it does not support, instead of logging and returning nothing.
func WithStrictContracts(on bool) Option {
	return func(m *Manager) { m.strict = on }
}

// WithLogger sets the logger used for debug traces and contract warnings.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager returns a Manager configured by opts.
func NewManager(opts ...Option) *Manager {
	m := &Manager{logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindMatchingObjects returns up to c.ResultsLimit nodes matching c, in the
// order the walk discovers them. Criteria without search keys, without an
// anchor or with a non-positive limit yield no results.
func (m *Manager) FindMatchingObjects(c Criteria) []Node {
	return m.findMatchingObjects(c, newSearchState())
}

func (m *Manager) findMatchingObjects(c Criteria, st *searchState) []Node {
	if len(c.SearchKeys) == 0 || c.AnchorObject == nil || c.ResultsLimit < 1 {
		return nil
	}

	if nodes, ok := m.presorted(c); ok {
		m.logger.Debug("axsearch: presorted search",
			"keys", c.keyNames(), "direction", c.Direction.String(), "results", len(nodes))
		return nodes
	}

	st.results = nil
	m.walk(c, st)
	m.logger.Debug("axsearch: search finished",
		"keys", c.keyNames(),
		"anchor", int(c.AnchorObject.ID()),
		"direction", c.Direction.String(),
		"limit", c.ResultsLimit,
		"results", len(st.results))
	return st.results
}

// presorted answers forward searches for all live regions or all frames
// under a root web area from the anchor's pre-sorted index, when it has one.
// The index must list nodes in the order a forward walk from the anchor
// visits them.
func (m *Manager) presorted(c Criteria) ([]Node, bool) {
	if len(c.SearchKeys) != 1 || c.StartObject != nil || c.VisibleOnly || c.SearchText != "" ||
		c.ImmediateDescendantsOnly || !c.forward() {
		return nil, false
	}
	key := c.SearchKeys[0]
	if key != KeyLiveRegion && key != KeyFrame {
		return nil, false
	}
	if !c.AnchorObject.Is(TraitRootWebArea) {
		return nil, false
	}
	index, ok := c.AnchorObject.(PresortedIndex)
	if !ok {
		return nil, false
	}
	sorted, ok := index.Presorted(key)
	if !ok {
		return nil, false
	}

	n := min(len(sorted), c.ResultsLimit)
	return append(make([]Node, 0, n), sorted[:n]...), true
}

// FindMatchingRange returns the next (or previous) misspelled range after
// (or before) c.StartRange. The start object's own misspellings are scanned
// first; after that the nearest node with misspellings in the search
// direction supplies its first (or last) range.
//
// c must hold exactly one key, KeyMisspelledWord, and a results limit of 1.
// Other criteria are a caller bug: they panic on a strict Manager and return
// false otherwise.
func (m *Manager) FindMatchingRange(c Criteria) (TextMarkerRange, bool) {
	if !c.ValidForRangeSearch() || c.AnchorObject == nil {
		if m.strict {
			panic(fmt.Sprintf("axsearch: FindMatchingRange needs a single %s key and limit 1, got keys=%v limit=%d",
				KeyMisspelledWord, c.keyNames(), c.ResultsLimit))
		}
		m.logger.Warn("axsearch: unsupported range search criteria",
			"keys", c.keyNames(), "limit", c.ResultsLimit)
		return TextMarkerRange{}, false
	}

	if !c.startInAnchor() {
		return TextMarkerRange{}, false
	}

	st := newSearchState()
	start := c.start()
	forward := c.forward()

	if m.match(start, c, st) {
		ranges := st.misspellings[start.ID()]
		if r, ok := scanRanges(ranges, c.StartRange, forward); ok {
			return r, true
		}
	}

	found := m.findMatchingObjects(c, st)
	if len(found) == 0 {
		return TextMarkerRange{}, false
	}
	ranges := st.misspellings[found[0].ID()]
	if len(ranges) == 0 {
		return TextMarkerRange{}, false
	}
	if forward {
		return ranges[0], true
	}
	return ranges[len(ranges)-1], true
}

// scanRanges finds the first range after from (forward) or the last range
// before it. A nil from selects the first or last range.
func scanRanges(ranges []TextMarkerRange, from *TextMarkerRange, forward bool) (TextMarkerRange, bool) {
	if len(ranges) == 0 {
		return TextMarkerRange{}, false
	}
	if from == nil {
		if forward {
			return ranges[0], true
		}
		return ranges[len(ranges)-1], true
	}
	if forward {
		for _, r := range ranges {
			if r.Greater(*from) {
				return r, true
			}
		}
		return TextMarkerRange{}, false
	}
	for i := len(ranges) - 1; i >= 0; i-- {
		if ranges[i].Less(*from) {
			return ranges[i], true
		}
	}
	return TextMarkerRange{}, false
}
