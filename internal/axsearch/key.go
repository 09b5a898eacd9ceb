package axsearch

import (
	"errors"
	"fmt"
	"strings"
)

// SearchKey is one predicate a candidate node can be tested against.
type SearchKey int

const (
	KeyAnyType SearchKey = iota
	KeyArticle
	KeyBlockquote
	KeyBlockquoteSameLevel
	KeyBoldFont
	KeyButton
	KeyCheckbox
	KeyControl
	KeyDifferentType
	KeyFontChange
	KeyFontColorChange
	KeyFrame
	KeyGraphic
	KeyHeading
	KeyHeadingLevel1
	KeyHeadingLevel2
	KeyHeadingLevel3
	KeyHeadingLevel4
	KeyHeadingLevel5
	KeyHeadingLevel6
	KeyHeadingSameLevel
	KeyHighlighted
	KeyItalicFont
	KeyKeyboardFocusable
	KeyLandmark
	KeyLink
	KeyList
	KeyLiveRegion
	KeyMisspelledWord
	KeyOutline
	KeyPlainText
	KeyRadioGroup
	KeySameType
	KeyStaticText
	KeyStyleChange
	KeyTable
	KeyTableSameLevel
	KeyTextField
	KeyUnderline
	KeyUnvisitedLink
	KeyVisitedLink

	numKeys
)

// ErrUnknownKey is returned by ParseSearchKey for names it does not know.
var ErrUnknownKey = errors.New("unknown search key")

type keyInfo struct {
	name string
	desc string
}

var keyTable = [numKeys]keyInfo{
	KeyAnyType:             {"any-type", "every node"},
	KeyArticle:             {"article", "article role"},
	KeyBlockquote:          {"blockquote", "blockquotes"},
	KeyBlockquoteSameLevel: {"blockquote-same-level", "blockquotes nested as deep as the start node"},
	KeyBoldFont:            {"bold-font", "bold text"},
	KeyButton:              {"button", "buttons"},
	KeyCheckbox:            {"checkbox", "checkboxes"},
	KeyControl:             {"control", "any form control"},
	KeyDifferentType:       {"different-type", "role differs from the start node"},
	KeyFontChange:          {"font-change", "font differs from the start node"},
	KeyFontColorChange:     {"font-color-change", "font color differs from the start node"},
	KeyFrame:               {"frame", "web areas"},
	KeyGraphic:             {"graphic", "images"},
	KeyHeading:             {"heading", "headings of any level"},
	KeyHeadingLevel1:       {"heading-level-1", "level 1 headings"},
	KeyHeadingLevel2:       {"heading-level-2", "level 2 headings"},
	KeyHeadingLevel3:       {"heading-level-3", "level 3 headings"},
	KeyHeadingLevel4:       {"heading-level-4", "level 4 headings"},
	KeyHeadingLevel5:       {"heading-level-5", "level 5 headings"},
	KeyHeadingLevel6:       {"heading-level-6", "level 6 headings"},
	KeyHeadingSameLevel:    {"heading-same-level", "headings at the start node's level"},
	KeyHighlighted:         {"highlighted", "highlighted text"},
	KeyItalicFont:          {"italic-font", "italic text"},
	KeyKeyboardFocusable:   {"keyboard-focusable", "nodes reachable with the keyboard"},
	KeyLandmark:            {"landmark", "landmark regions"},
	KeyLink:                {"link", "links"},
	KeyList:                {"list", "lists"},
	KeyLiveRegion:          {"live-region", "live regions"},
	KeyMisspelledWord:      {"misspelled-word", "text containing misspellings"},
	KeyOutline:             {"outline", "tree views"},
	KeyPlainText:           {"plain-text", "unstyled text"},
	KeyRadioGroup:          {"radio-group", "radio groups, including ad-hoc groups"},
	KeySameType:            {"same-type", "role equals the start node"},
	KeyStaticText:          {"static-text", "static text"},
	KeyStyleChange:         {"style-change", "style differs from the start node"},
	KeyTable:               {"table", "exposed tables"},
	KeyTableSameLevel:      {"table-same-level", "tables nested as deep as the start node"},
	KeyTextField:           {"text-field", "text inputs"},
	KeyUnderline:           {"underline", "underlined text"},
	KeyUnvisitedLink:       {"unvisited-link", "links not yet visited"},
	KeyVisitedLink:         {"visited-link", "visited links"},
}

// String returns the kebab-case name of the key.
func (k SearchKey) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("SearchKey(%d)", int(k))
	}
	return keyTable[k].name
}

// Description returns a short human readable summary of what the key matches.
func (k SearchKey) Description() string {
	if k < 0 || k >= numKeys {
		return ""
	}
	return keyTable[k].desc
}

// Referential reports whether the key compares candidates against the start
// node, and so never matches without one.
func (k SearchKey) Referential() bool {
	switch k {
	case KeyDifferentType, KeySameType, KeyFontChange, KeyFontColorChange,
		KeyStyleChange, KeyHeadingSameLevel, KeyBlockquoteSameLevel, KeyTableSameLevel:
		return true
	}
	return false
}

// AllKeys returns every search key in declaration order.
func AllKeys() []SearchKey {
	keys := make([]SearchKey, numKeys)
	for i := range keys {
		keys[i] = SearchKey(i)
	}
	return keys
}

// ParseSearchKey converts a key name to a SearchKey. Matching ignores case
// and accepts "-", "_" or nothing as word separators, so "HeadingSameLevel",
// "heading_same_level" and "heading-same-level" are equivalent.
func ParseSearchKey(s string) (SearchKey, error) {
	norm := normalizeKeyName(s)
	for i, info := range keyTable {
		if normalizeKeyName(info.name) == norm {
			return SearchKey(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

func normalizeKeyName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// MetaKeys maps meta-key names to the concrete keys they expand to.
var MetaKeys = map[string][]SearchKey{
	"interactive": {KeyButton, KeyCheckbox, KeyRadioGroup, KeyTextField, KeyLink, KeyControl},
	"structure":   {KeyHeading, KeyLandmark, KeyList, KeyTable, KeyArticle, KeyBlockquote},
	"style":       {KeyBoldFont, KeyItalicFont, KeyUnderline, KeyHighlighted},
}

// ExpandKeys parses a list of key names, expanding meta-keys in place.
// Duplicates are dropped; the first occurrence decides the position.
func ExpandKeys(names []string) ([]SearchKey, error) {
	seen := make(map[SearchKey]bool, len(names))
	var keys []SearchKey
	add := func(k SearchKey) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, name := range names {
		if meta, ok := MetaKeys[strings.ToLower(strings.TrimSpace(name))]; ok {
			for _, k := range meta {
				add(k)
			}
			continue
		}
		k, err := ParseSearchKey(name)
		if err != nil {
			return nil, err
		}
		add(k)
	}
	return keys, nil
}
