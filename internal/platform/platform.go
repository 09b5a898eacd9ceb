package platform

import "github.com/mj1618/axsearch/internal/model"

// Reader produces navigable accessibility trees.
type Reader interface {
	// ReadTree loads and links the tree named by opts.Path.
	ReadTree(opts ReadOptions) (*model.Tree, error)
}

// Speller supplies misspellings and corrections. Readers that spell check
// text expose their checker through it.
type Speller interface {
	model.SpellChecker
	Suggestions(word string, n int) []string
}
