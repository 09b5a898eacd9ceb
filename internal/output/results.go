package output

import (
	"github.com/mj1618/axsearch/internal/axsearch"
	"github.com/mj1618/axsearch/internal/model"
)

// SearchResult is the output of the `search` command and tool.
type SearchResult struct {
	Tree      string              `yaml:"tree"            json:"tree"`
	Keys      []string            `yaml:"keys"            json:"keys"`
	Direction string              `yaml:"direction"       json:"direction"`
	Anchor    int                 `yaml:"anchor"          json:"anchor"`
	Start     *int                `yaml:"start,omitempty" json:"start,omitempty"`
	Text      string              `yaml:"text,omitempty"  json:"text,omitempty"`
	Count     int                 `yaml:"count"           json:"count"`
	Results   []model.FlatElement `yaml:"results"         json:"results"`
}

// RangeResult is the output of the `range` command and the find_range tool.
type RangeResult struct {
	Tree        string                    `yaml:"tree"                  json:"tree"`
	Direction   string                    `yaml:"direction"             json:"direction"`
	Found       bool                      `yaml:"found"                 json:"found"`
	Range       *axsearch.TextMarkerRange `yaml:"range,omitempty"       json:"range,omitempty"`
	Word        string                    `yaml:"word,omitempty"        json:"word,omitempty"`
	Suggestions []string                  `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
	Element     *model.FlatElement        `yaml:"element,omitempty"     json:"element,omitempty"`
}

// KeyInfo describes one search key.
type KeyInfo struct {
	Name        string `yaml:"name"                  json:"name"`
	Description string `yaml:"description"           json:"description"`
	Referential bool   `yaml:"referential,omitempty" json:"referential,omitempty"`
}

// KeysResult is the output of the `keys` command and tool.
type KeysResult struct {
	Keys []KeyInfo           `yaml:"keys" json:"keys"`
	Meta map[string][]string `yaml:"meta" json:"meta"`
}

// TreeResult is the output of the `tree` command and tool.
type TreeResult struct {
	Tree     string              `yaml:"tree"               json:"tree"`
	Viewport *[4]int             `yaml:"viewport,omitempty" json:"viewport,omitempty"`
	Count    int                 `yaml:"count"              json:"count"`
	Elements []model.FlatElement `yaml:"elements"           json:"elements"`
}
