package cmd

import (
	"fmt"

	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/query"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find nodes matching search keys in reading order",
	Long:  `Walk the tree in reading order from a start node and list the nodes that
match any of the given search keys, the way a screen reader's "next heading"
or "previous link" commands do.

Nodes are named by numeric ID or by ref (see 'axsearch tree'). A ref may be
shortened to any unique suffix.

Examples:
  axsearch search --tree page.yaml --keys heading
  axsearch search --tree page.yaml --keys link --start main/intro --limit 1
  axsearch search --tree page.yaml --keys interactive --direction previous --start 42
  axsearch search --tree page.yaml --keys heading-same-level --start 7 --visible-only`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addTreeFlag(searchCmd)
	searchCmd.Flags().String("keys", "", "Comma-separated search keys or meta-keys (see 'axsearch keys')")
	searchCmd.Flags().String("anchor", "", "Only search inside this node (ID or ref, default: root)")
	searchCmd.Flags().String("start", "", "Start after (or before) this node (ID or ref)")
	searchCmd.Flags().String("direction", "next", "Direction: next, previous")
	searchCmd.Flags().Bool("visible-only", false, "Skip nodes outside the viewport")
	searchCmd.Flags().Bool("immediate", false, "Only match direct children of the anchor")
	searchCmd.Flags().String("text", "", "Only match nodes whose text contains this string")
	searchCmd.Flags().Int("limit", query.DefaultLimit, "Max results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keys, _ := cmd.Flags().GetString("keys")
	anchor, _ := cmd.Flags().GetString("anchor")
	start, _ := cmd.Flags().GetString("start")
	direction, _ := cmd.Flags().GetString("direction")
	visibleOnly, _ := cmd.Flags().GetBool("visible-only")
	immediate, _ := cmd.Flags().GetBool("immediate")
	text, _ := cmd.Flags().GetString("text")
	limit, _ := cmd.Flags().GetInt("limit")

	if keys == "" {
		return fmt.Errorf("--keys is required")
	}
	if limit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", limit)
	}

	tree, _, path, err := loadTree(cmd)
	if err != nil {
		return err
	}

	result, err := query.Search(newManager(), tree, path, query.SearchRequest{
		Keys:        query.SplitList(keys),
		Anchor:      anchor,
		Start:       start,
		Direction:   direction,
		VisibleOnly: visibleOnly,
		Immediate:   immediate,
		Text:        text,
		Limit:       limit,
	})
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), result)
}
