package file

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/axsearch/internal/model"
	"github.com/mj1618/axsearch/internal/platform"
	"github.com/mj1618/axsearch/internal/spelling"
)

// Reader implements platform.Reader for tree files.
type Reader struct {
	checker *spelling.Checker
}

// NewReader creates a reader. A nil checker disables spell checking, so only
// misspellings recorded in the file are reported.
func NewReader(checker *spelling.Checker) *Reader {
	return &Reader{checker: checker}
}

// ReadTree loads opts.Path, links it, and assigns refs.
func (r *Reader) ReadTree(opts platform.ReadOptions) (*model.Tree, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("no tree file given")
	}
	doc, err := model.LoadDocument(opts.Path)
	if err != nil {
		return nil, err
	}

	treeOpts := model.TreeOptions{
		Viewport:          doc.Viewport,
		IgnoreEmptyGroups: opts.IgnoreEmptyGroups,
		Raw:               opts.Raw,
	}
	if opts.Viewport != nil {
		vp := opts.Viewport.Array()
		treeOpts.Viewport = &vp
	}
	if r.checker != nil {
		treeOpts.Checker = r.checker
	}

	tree, err := model.BuildTree(doc.Elements, treeOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Path, err)
	}
	tree.AssignRefs()
	slog.Debug("read tree", "path", opts.Path, "nodes", tree.Len(), "viewport", treeOpts.Viewport != nil)
	return tree, nil
}
