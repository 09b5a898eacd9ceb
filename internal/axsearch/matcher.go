package axsearch

import "strings"

// searchState is the scratch state of one logical search operation.
type searchState struct {
	results      []Node
	misspellings map[ObjectID][]TextMarkerRange
}

func newSearchState() *searchState {
	return &searchState{misspellings: make(map[ObjectID][]TextMarkerRange)}
}

// matchKey tests node against a single key. For KeyMisspelledWord the
// node's non-empty misspelling ranges are returned alongside the result.
func (m *Manager) matchKey(node Node, key SearchKey, c Criteria) (bool, []TextMarkerRange) {
	ref := c.StartObject
	if key.Referential() && ref == nil {
		return false, nil
	}

	switch key {
	case KeyAnyType:
		return true, nil
	case KeyArticle:
		return node.Role() == RoleArticle, nil
	case KeyBlockquote:
		return node.Is(TraitBlockquote), nil
	case KeyBlockquoteSameLevel:
		return node.Is(TraitBlockquote) && node.BlockquoteLevel() == ref.BlockquoteLevel(), nil
	case KeyBoldFont:
		return node.Is(TraitBold), nil
	case KeyButton:
		return node.Is(TraitButton), nil
	case KeyCheckbox:
		return node.Is(TraitCheckbox), nil
	case KeyControl:
		return node.Is(TraitControl), nil
	case KeyDifferentType:
		return node.Role() != ref.Role(), nil
	case KeyFontChange:
		return !node.HasSameFont(ref), nil
	case KeyFontColorChange:
		return !node.HasSameFontColor(ref), nil
	case KeyFrame:
		return node.Is(TraitWebArea), nil
	case KeyGraphic:
		return node.Is(TraitImage), nil
	case KeyHeading:
		return node.Is(TraitHeading), nil
	case KeyHeadingLevel1, KeyHeadingLevel2, KeyHeadingLevel3,
		KeyHeadingLevel4, KeyHeadingLevel5, KeyHeadingLevel6:
		level := int(key-KeyHeadingLevel1) + 1
		return node.Is(TraitHeading) && node.HeadingLevel() == level, nil
	case KeyHeadingSameLevel:
		return node.Is(TraitHeading) && node.HeadingLevel() == ref.HeadingLevel(), nil
	case KeyHighlighted:
		return node.Is(TraitHighlighted), nil
	case KeyItalicFont:
		return node.Is(TraitItalic), nil
	case KeyKeyboardFocusable:
		return node.Is(TraitKeyboardFocusable), nil
	case KeyLandmark:
		return node.Is(TraitLandmark), nil
	case KeyLink:
		if node.Is(TraitLink) {
			return true, nil
		}
		return m.linkAncestors && hasLinkAncestor(node), nil
	case KeyList:
		return node.Is(TraitList), nil
	case KeyLiveRegion:
		return node.Is(TraitLiveRegion), nil
	case KeyMisspelledWord:
		ranges := nonEmptyRanges(node.MisspellingRanges())
		return len(ranges) > 0, ranges
	case KeyOutline:
		return node.Is(TraitOutline), nil
	case KeyPlainText:
		return node.Is(TraitPlainText), nil
	case KeyRadioGroup:
		return node.Is(TraitRadioGroup) || inDifferentAdhocGroup(node, ref), nil
	case KeySameType:
		return node.Role() == ref.Role(), nil
	case KeyStaticText:
		return node.Is(TraitStaticText), nil
	case KeyStyleChange:
		return !node.HasSameStyle(ref), nil
	case KeyTable:
		return node.Is(TraitTable) && node.Is(TraitExposable), nil
	case KeyTableSameLevel:
		return node.Is(TraitTable) && node.Is(TraitExposable) && node.TableLevel() == ref.TableLevel(), nil
	case KeyTextField:
		return node.Is(TraitTextControl), nil
	case KeyUnderline:
		return node.Is(TraitUnderline), nil
	case KeyUnvisitedLink:
		return node.Is(TraitUnvisitedLink), nil
	case KeyVisitedLink:
		return node.Is(TraitVisitedLink), nil
	}
	return false, nil
}

// match reports whether node satisfies any of the search keys and, if
// requested, is on screen. Text is checked separately by matchesText.
func (m *Manager) match(node Node, c Criteria, st *searchState) bool {
	if node == nil {
		return false
	}
	for _, key := range c.SearchKeys {
		ok, ranges := m.matchKey(node, key, c)
		if !ok {
			continue
		}
		if ranges != nil {
			st.misspellings[node.ID()] = ranges
		}
		if c.VisibleOnly {
			return node.Is(TraitOnScreen)
		}
		return true
	}
	return false
}

// matchWithResultsLimit records node when it matches and reports whether the
// search has collected enough results to stop.
func (m *Manager) matchWithResultsLimit(node Node, c Criteria, st *searchState) bool {
	if m.match(node, c, st) && matchesText(node, c.SearchText) {
		st.results = append(st.results, node)
	}
	return len(st.results) >= c.ResultsLimit
}

// matchesText is a case-insensitive substring test against the title, the
// description and the value of node, in that order.
func matchesText(node Node, text string) bool {
	if text == "" {
		return true
	}
	text = strings.ToLower(text)
	return strings.Contains(strings.ToLower(node.Title()), text) ||
		strings.Contains(strings.ToLower(node.Description()), text) ||
		strings.Contains(strings.ToLower(node.StringValue()), text)
}

// inDifferentAdhocGroup reports whether node is a radio button that is not
// in the same ad-hoc group as ref. Radio buttons without a name are groups
// of their own.
func inDifferentAdhocGroup(node, ref Node) bool {
	if !node.Is(TraitRadioButton) {
		return false
	}
	if ref == nil || !ref.Is(TraitRadioButton) {
		return true
	}
	if sameNode(node, ref) {
		return false
	}
	name := node.NameAttribute()
	return name == "" || name != ref.NameAttribute()
}

func hasLinkAncestor(node Node) bool {
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p.Role() == RoleLink {
			return true
		}
	}
	return false
}

func nonEmptyRanges(ranges []TextMarkerRange) []TextMarkerRange {
	var out []TextMarkerRange
	for _, r := range ranges {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}
