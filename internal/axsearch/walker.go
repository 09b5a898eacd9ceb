package axsearch

// The walk only visits nodes before or after the start node. It steps up the
// unignored ancestor chain of the start node and does a depth-first search of
// the not yet visited children at each level.
func (m *Manager) walk(c Criteria, st *searchState) {
	start := c.start()
	forward := c.forward()

	// A start outside the anchor would walk up a chain that never reaches
	// the anchor's parent.
	if !c.startInAnchor() {
		return
	}

	// Walking forwards, the first level is the start node itself, so its
	// descendants are searched: they follow it in reading order. This departs
	// from the "excluding start's own subtree" wording for the first level
	// and matches the per-level child partitioning that comes after it.
	// Walking backwards, the start node's own children come after it, so the
	// first level examined is its parent with start as the boundary. With no
	// explicit start everything under the anchor is searched.
	var previous Node
	if !forward && !sameNode(start, c.AnchorObject) {
		previous = start
		start = start.ParentUnignored()
	}

	stop := c.AnchorObject.ParentUnignored()
	for ; start != nil && !sameNode(start, stop); start = start.ParentUnignored() {
		var stack []Node
		if !c.ImmediateDescendantsOnly || sameNode(start, c.AnchorObject) {
			stack = appendChildren(stack, start, forward, previous)
		}

		for len(stack) > 0 {
			candidate := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if m.matchWithResultsLimit(candidate, c, st) {
				return
			}
			if !c.ImmediateDescendantsOnly {
				stack = appendChildren(stack, candidate, forward, nil)
			}
		}

		if len(st.results) >= c.ResultsLimit {
			return
		}

		// Walking backwards the level's own node precedes everything visited
		// so far at this level.
		if !forward && !sameNode(start, c.AnchorObject) && m.matchWithResultsLimit(start, c, st) {
			return
		}

		previous = start
	}
}

// SearchChildren returns the nodes a search descends into. An exposed
// table is searched through its rows rather than its raw children.
func SearchChildren(node Node) []Node {
	if node.Is(TraitTable) && node.Is(TraitExposable) {
		return node.Rows()
	}
	return node.UnignoredChildren()
}

// appendChildren pushes the children of node that lie after (forward) or
// before boundary onto stack, ordered so that popping yields them in walk
// order. When boundary is nil or not among the children every child is
// pushed.
func appendChildren(stack []Node, node Node, forward bool, boundary Node) []Node {
	children := SearchChildren(node)
	begin, end := 0, len(children)

	if boundary = effectiveStart(boundary, node, forward); boundary != nil {
		if pos := indexOf(children, boundary); pos >= 0 {
			if forward {
				begin = pos + 1
			} else {
				end = pos
			}
		}
	}

	if forward {
		for i := end - 1; i >= begin; i-- {
			stack = append(stack, children[i])
		}
		return stack
	}
	return append(stack, children[begin:end]...)
}

// effectiveStart substitutes an ignored boundary node with an unignored
// sibling of its highest ignored ancestor below level. Walking forwards the
// previous sibling is used, so the ignored subtree's promoted children are
// still searched; walking backwards the next sibling is used. Boundaries
// that are not ignored, or not below level, are returned unchanged.
func effectiveStart(boundary, level Node, forward bool) Node {
	if boundary == nil || !boundary.Is(TraitIgnored) || !boundary.IsDescendantOf(level) {
		return boundary
	}

	for p := boundary.Parent(); p != nil && p.Is(TraitIgnored); p = p.Parent() {
		if sameNode(p, level) {
			break
		}
		boundary = p
	}

	if !boundary.Is(TraitIgnored) {
		return boundary
	}
	if forward {
		return boundary.PreviousSiblingUnignored()
	}
	return boundary.NextSiblingUnignored()
}

func indexOf(nodes []Node, target Node) int {
	for i, n := range nodes {
		if sameNode(n, target) {
			return i
		}
	}
	return -1
}
