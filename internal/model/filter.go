package model

import (
	"strings"

	"github.com/mj1618/axsearch/internal/axsearch"
)

// FilterFlat keeps flattened nodes whose role is in roles (empty = all) and
// whose title, value, or description contains text (case-insensitive).
func FilterFlat(elements []FlatElement, roles []string, text string) []FlatElement {
	if len(roles) == 0 && text == "" {
		return elements
	}

	roleSet := make(map[axsearch.Role]bool, len(roles))
	for _, r := range roles {
		roleSet[MapRole(r)] = true
	}
	textLower := strings.ToLower(text)

	var result []FlatElement
	for _, el := range elements {
		if len(roleSet) > 0 && !roleSet[axsearch.Role(el.Role)] {
			continue
		}
		if text != "" && !textMatches(el, textLower) {
			continue
		}
		result = append(result, el)
	}
	return result
}

func textMatches(el FlatElement, textLower string) bool {
	return strings.Contains(strings.ToLower(el.Title), textLower) ||
		strings.Contains(strings.ToLower(el.Value), textLower) ||
		strings.Contains(strings.ToLower(el.Description), textLower)
}

// isEmptyGroup returns true if the element has role "group" or "other"
// and has no title, value, or description, i.e. it carries nothing a
// screen reader would announce.
func isEmptyGroup(el Element) bool {
	role := MapRole(el.Role)
	return (role == axsearch.RoleGroup || role == axsearch.RoleOther) &&
		el.Title == "" && el.Value == "" && el.Description == ""
}

// boundsIntersect checks if two [x, y, width, height] rectangles overlap.
func boundsIntersect(a, b [4]int) bool {
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}
