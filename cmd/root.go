package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mj1618/axsearch/internal/config"
	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/query"
	"github.com/mj1618/axsearch/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "axsearch",
	Short: "Search accessibility trees the way a screen reader navigates them",
	Long:  `A CLI tool that answers screen reader navigation queries ("next heading",
"previous link", "next misspelled word") over accessibility trees saved as
YAML or JSON files, and serves the same searches to AI agents over MCP.`,
	SilenceUsage: true,
}

// cfg is the config file merged with explicit flags, set before every command.
var cfg = config.Default()

// raw and noSpelling are read flags with no config file equivalent.
var (
	raw        bool
	noSpelling bool
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default ~/.axsearch/config.toml)")
	pf.String("format", "", "Output format: yaml, json")
	pf.Bool("pretty", false, "Pretty-print JSON")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.Bool("raw", false, "Never hide empty groups automatically")
	pf.Bool("ignore-empty-groups", false, "Hide anonymous group and other nodes everywhere")
	pf.String("viewport", "", "Viewport as x,y,w,h (overrides the tree file's)")
	pf.String("dictionary", "", "Comma-separated extra word lists for the spell checker")
	pf.Bool("no-spelling", false, "Only report misspellings recorded in the tree file")
	pf.Bool("link-ancestors", false, "Nodes inside a link match link searches")
	pf.Bool("strict", false, "Panic instead of warning on invalid range searches")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	}
}

// loadSettings reads the config file, applies explicit flags over it, and
// sets up logging and output.
func loadSettings(cmd *cobra.Command) error {
	pf := rootCmd.PersistentFlags()
	path, _ := pf.GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		// config init may target a file that does not exist yet
		if cmd != configInitCmd || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		loaded = config.Default()
	}

	if pf.Changed("format") {
		loaded.Format, _ = pf.GetString("format")
	}
	if pf.Changed("log-level") {
		loaded.LogLevel, _ = pf.GetString("log-level")
	}
	if pf.Changed("link-ancestors") {
		loaded.LinkAncestors, _ = pf.GetBool("link-ancestors")
	}
	if pf.Changed("strict") {
		loaded.Strict, _ = pf.GetBool("strict")
	}
	if pf.Changed("ignore-empty-groups") {
		loaded.IgnoreEmptyGroups, _ = pf.GetBool("ignore-empty-groups")
	}
	if pf.Changed("viewport") {
		loaded.Viewport, _ = pf.GetString("viewport")
	}
	if pf.Changed("dictionary") {
		dicts, _ := pf.GetString("dictionary")
		loaded.Dictionary = query.SplitList(dicts)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	raw, _ = pf.GetBool("raw")
	noSpelling, _ = pf.GetBool("no-spelling")

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	output.OutputFormat = format
	output.PrettyOutput, _ = pf.GetBool("pretty")
	return nil
}
