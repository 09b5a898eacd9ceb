package cmd

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/axsearch/internal/axsearch"
	"github.com/mj1618/axsearch/internal/model"
	"github.com/mj1618/axsearch/internal/platform"
	"github.com/spf13/cobra"
)

// addTreeFlag adds the --tree flag shared by every command that reads a tree.
func addTreeFlag(cmd *cobra.Command) {
	cmd.Flags().String("tree", "", "Tree file to search (.yaml, .yml or .json)")
}

func newProvider() (*platform.Provider, error) {
	return platform.NewProvider(platform.ProviderOptions{
		Dictionaries: cfg.Dictionary,
		NoSpelling:   noSpelling,
	})
}

// readOptions builds the read defaults from config and flags. Path is left
// for the caller.
func readOptions() (platform.ReadOptions, error) {
	opts := platform.ReadOptions{
		IgnoreEmptyGroups: cfg.IgnoreEmptyGroups,
		Raw:               raw,
	}
	if cfg.Viewport != "" {
		vp, err := platform.ParseBBox(cfg.Viewport)
		if err != nil {
			return opts, fmt.Errorf("viewport: %w", err)
		}
		opts.Viewport = vp
	}
	return opts, nil
}

// loadTree reads the tree named by --tree.
func loadTree(cmd *cobra.Command) (*model.Tree, *platform.Provider, string, error) {
	path, _ := cmd.Flags().GetString("tree")
	if path == "" {
		return nil, nil, "", fmt.Errorf("--tree is required")
	}
	opts, err := readOptions()
	if err != nil {
		return nil, nil, "", err
	}
	opts.Path = path

	provider, err := newProvider()
	if err != nil {
		return nil, nil, "", err
	}
	if provider.Reader == nil {
		return nil, nil, "", fmt.Errorf("reader not available")
	}
	tree, err := provider.Reader.ReadTree(opts)
	if err != nil {
		return nil, nil, "", err
	}
	return tree, provider, path, nil
}

func newManager() *axsearch.Manager {
	return axsearch.NewManager(
		axsearch.WithLinkAncestors(cfg.LinkAncestors),
		axsearch.WithStrictContracts(cfg.Strict),
		axsearch.WithLogger(slog.Default()),
	)
}
