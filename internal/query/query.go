// Package query runs search requests against a tree and shapes the results
// for output. The CLI commands and the MCP tools share it.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/axsearch/internal/axsearch"
	"github.com/mj1618/axsearch/internal/model"
	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/platform"
)

// ErrStartOutsideAnchor is returned when the start node is neither the
// anchor nor inside it.
var ErrStartOutsideAnchor = errors.New("start is not inside the anchor")

// DefaultLimit is used when a request does not set a limit.
const DefaultLimit = 10

// maxSuggestions caps spelling suggestions per misspelled word.
const maxSuggestions = 5

// SearchRequest describes an object search. Anchor and Start accept a
// numeric ID or a ref; an empty Anchor means the tree root.
type SearchRequest struct {
	Keys        []string
	Anchor      string
	Start       string
	Direction   string
	VisibleOnly bool
	Immediate   bool
	Text        string
	Limit       int
}

// Search runs FindMatchingObjects.
func Search(m *axsearch.Manager, tree *model.Tree, path string, req SearchRequest) (output.SearchResult, error) {
	keys, err := axsearch.ExpandKeys(req.Keys)
	if err != nil {
		return output.SearchResult{}, err
	}
	if len(keys) == 0 {
		return output.SearchResult{}, fmt.Errorf("no search keys given")
	}
	dir, err := axsearch.ParseDirection(req.Direction)
	if err != nil {
		return output.SearchResult{}, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		return output.SearchResult{}, fmt.Errorf("limit must be at least 1, got %d", limit)
	}
	anchor, err := resolveAnchor(tree, req.Anchor)
	if err != nil {
		return output.SearchResult{}, err
	}
	start, err := resolveOptional(tree, req.Start, "start")
	if err != nil {
		return output.SearchResult{}, err
	}
	if err := checkStart(anchor, start); err != nil {
		return output.SearchResult{}, err
	}

	c := axsearch.Criteria{
		SearchKeys:               keys,
		AnchorObject:             anchor,
		Direction:                dir,
		VisibleOnly:              req.VisibleOnly,
		ImmediateDescendantsOnly: req.Immediate,
		SearchText:               req.Text,
		ResultsLimit:             limit,
	}
	result := output.SearchResult{
		Tree:      path,
		Keys:      keyNames(keys),
		Direction: dir.String(),
		Anchor:    int(anchor.ID()),
		Text:      req.Text,
	}
	if start != nil {
		c.StartObject = start
		id := int(start.ID())
		result.Start = &id
	}

	for _, n := range m.FindMatchingObjects(c) {
		node, ok := n.(*model.Node)
		if !ok {
			continue
		}
		result.Results = append(result.Results, node.Describe())
	}
	result.Count = len(result.Results)
	if result.Results == nil {
		result.Results = []model.FlatElement{}
	}
	return result, nil
}

// RangeRequest describes a misspelling search. From is "START:END", byte
// offsets in the start node's text; it needs Start.
type RangeRequest struct {
	Anchor    string
	Start     string
	Direction string
	From      string
}

// FindRange runs FindMatchingRange for the next or previous misspelled word.
// speller may be nil, in which case no suggestions are offered.
func FindRange(m *axsearch.Manager, speller platform.Speller, tree *model.Tree, path string, req RangeRequest) (output.RangeResult, error) {
	dir, err := axsearch.ParseDirection(req.Direction)
	if err != nil {
		return output.RangeResult{}, err
	}
	anchor, err := resolveAnchor(tree, req.Anchor)
	if err != nil {
		return output.RangeResult{}, err
	}
	start, err := resolveOptional(tree, req.Start, "start")
	if err != nil {
		return output.RangeResult{}, err
	}
	if err := checkStart(anchor, start); err != nil {
		return output.RangeResult{}, err
	}

	c := axsearch.Criteria{
		SearchKeys:   []axsearch.SearchKey{axsearch.KeyMisspelledWord},
		AnchorObject: anchor,
		Direction:    dir,
		ResultsLimit: 1,
	}
	if start != nil {
		c.StartObject = start
	}
	if req.From != "" {
		if start == nil {
			return output.RangeResult{}, fmt.Errorf("--from needs a start node")
		}
		from, err := ParseOffsets(req.From)
		if err != nil {
			return output.RangeResult{}, err
		}
		r := axsearch.NewRange(start.ID(), start.Order(), from[0], from[1])
		c.StartRange = &r
	}

	result := output.RangeResult{Tree: path, Direction: dir.String()}
	found, ok := m.FindMatchingRange(c)
	if !ok {
		return result, nil
	}
	result.Found = true
	result.Range = &found

	node, err := tree.NodeByID(int(found.Start.Node))
	if err != nil {
		return result, nil
	}
	flat := node.Describe()
	result.Element = &flat
	text := node.Text()
	if found.Start.Offset >= 0 && found.End.Offset <= len(text) && found.Start.Offset <= found.End.Offset {
		result.Word = text[found.Start.Offset:found.End.Offset]
	}
	if speller != nil && result.Word != "" {
		result.Suggestions = speller.Suggestions(result.Word, maxSuggestions)
	}
	return result, nil
}

// Keys lists every search key and meta-key.
func Keys() output.KeysResult {
	var result output.KeysResult
	for _, k := range axsearch.AllKeys() {
		result.Keys = append(result.Keys, output.KeyInfo{
			Name:        k.String(),
			Description: k.Description(),
			Referential: k.Referential(),
		})
	}
	result.Meta = make(map[string][]string, len(axsearch.MetaKeys))
	for name, keys := range axsearch.MetaKeys {
		result.Meta[name] = keyNames(keys)
	}
	return result
}

// TreeRequest filters a flattened tree listing.
type TreeRequest struct {
	Roles       []string
	Text        string
	WithIgnored bool
}

// Tree flattens the tree for display.
func Tree(tree *model.Tree, path string, req TreeRequest) output.TreeResult {
	elements := model.FilterFlat(tree.Flatten(req.WithIgnored), req.Roles, req.Text)
	if elements == nil {
		elements = []model.FlatElement{}
	}
	return output.TreeResult{
		Tree:     path,
		Viewport: tree.Viewport(),
		Count:    len(elements),
		Elements: elements,
	}
}

// ParseOffsets parses "START:END" byte offsets.
func ParseOffsets(s string) ([2]int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return [2]int{}, fmt.Errorf("invalid range %q: expected START:END", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if start < 0 || end < start {
		return [2]int{}, fmt.Errorf("invalid range %q: need 0 <= START <= END", s)
	}
	return [2]int{start, end}, nil
}

// SplitList splits a comma-separated flag value, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func resolveAnchor(tree *model.Tree, target string) (*model.Node, error) {
	if target == "" {
		return tree.Root(), nil
	}
	n, err := tree.Resolve(target)
	if err != nil {
		return nil, fmt.Errorf("anchor: %w", err)
	}
	return n, nil
}

func resolveOptional(tree *model.Tree, target, what string) (*model.Node, error) {
	if target == "" {
		return nil, nil
	}
	n, err := tree.Resolve(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return n, nil
}

func checkStart(anchor, start *model.Node) error {
	if start == nil || start == anchor || start.IsDescendantOf(anchor) {
		return nil
	}
	return fmt.Errorf("%w: start %d, anchor %d", ErrStartOutsideAnchor, start.ID(), anchor.ID())
}

func keyNames(keys []axsearch.SearchKey) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}
