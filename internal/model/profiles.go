package model

import "github.com/mj1618/axsearch/internal/axsearch"

// HasWebContent checks if the element tree contains web content
// by looking for the "web" role (AXWebArea). This indicates a browser
// or web view, where hiding empty groups is almost always desirable.
func HasWebContent(elements []Element) bool {
	for i := range elements {
		if MapRole(elements[i].Role) == axsearch.RoleWebArea {
			return true
		}
		if HasWebContent(elements[i].Children) {
			return true
		}
	}
	return false
}
