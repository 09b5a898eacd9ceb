// Package spelling flags misspelled words in accessibility text and offers
// corrections. Words are checked against an embedded English word list plus
// any user dictionaries; corrections come from a fuzzy edit-distance model
// trained on the same words.
package spelling

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/sajari/fuzzy"
)

//go:embed data/words.txt
var embeddedFS embed.FS

// minWordLen is the shortest word that is ever flagged.
const minWordLen = 3

// Checker is safe for concurrent use.
type Checker struct {
	mu    sync.RWMutex
	words map[string]bool
	model *fuzzy.Model
}

// New returns a Checker trained on the embedded word list and the extra
// words given.
func New(extra ...string) (*Checker, error) {
	c := &Checker{words: make(map[string]bool)}

	c.model = fuzzy.NewModel()
	c.model.SetDepth(2) // maximum edit distance
	c.model.SetThreshold(1)
	c.model.SetUseAutocomplete(false)

	f, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		return nil, fmt.Errorf("open embedded dictionary: %w", err)
	}
	defer f.Close()
	if err := c.AddDictionary(f); err != nil {
		return nil, fmt.Errorf("embedded dictionary: %w", err)
	}
	c.AddWords(extra...)
	return c, nil
}

// AddWords adds words to the dictionary.
func (c *Checker) AddWords(words ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || c.words[w] {
			continue
		}
		c.words[w] = true
		c.model.TrainWord(w)
	}
}

// AddDictionary reads whitespace-separated words. Lines starting with '#'
// are comments.
func (c *Checker) AddDictionary(r io.Reader) error {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}
	c.AddWords(words...)
	return nil
}

// AddDictionaryFile loads a user dictionary from disk.
func (c *Checker) AddDictionaryFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	if err := c.AddDictionary(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Len returns the number of known words.
func (c *Checker) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.words)
}

// Known reports whether word is in the dictionary. Matching ignores case,
// and a trailing possessive "'s" is stripped before a second lookup.
func (c *Checker) Known(word string) bool {
	w := strings.ToLower(word)
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.words[w] {
		return true
	}
	if stem, ok := strings.CutSuffix(w, "'s"); ok {
		return c.words[stem]
	}
	return false
}

// Misspellings returns the byte ranges of unknown words in text, in order.
// Words shorter than three letters and all-caps acronyms are never flagged.
func (c *Checker) Misspellings(text string) [][2]int {
	var out [][2]int
	for _, w := range splitWords(text) {
		word := text[w[0]:w[1]]
		if utf8.RuneCountInString(word) < minWordLen || isAcronym(word) {
			continue
		}
		if !c.Known(word) {
			out = append(out, w)
		}
	}
	return out
}

// Suggestions returns up to n likely corrections for word, best first.
func (c *Checker) Suggestions(word string, n int) []string {
	if n <= 0 {
		return nil
	}
	return c.model.SpellCheckSuggestions(strings.ToLower(word), n)
}

// splitWords finds runs of letters, allowing apostrophes between letters.
func splitWords(text string) [][2]int {
	var words [][2]int
	start := -1
	for i, r := range text {
		switch {
		case unicode.IsLetter(r):
			if start < 0 {
				start = i
			}
		case r == '\'' && start >= 0 && nextIsLetter(text[i+1:]):
		default:
			if start >= 0 {
				words = append(words, [2]int{start, i})
				start = -1
			}
		}
	}
	if start >= 0 {
		words = append(words, [2]int{start, len(text)})
	}
	return words
}

func nextIsLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func isAcronym(word string) bool {
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
