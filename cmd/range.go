package cmd

import (
	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/query"
	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Find the next or previous misspelled word",
	Long:  `Find the next (or previous) misspelled word in reading order and print its
text range, the word, and suggested corrections. Pass the range printed by
one call back with --from to continue from it.

Examples:
  axsearch range --tree page.yaml
  axsearch range --tree page.yaml --start 12 --from 4:11
  axsearch range --tree page.yaml --start 12 --direction previous`,
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)
	addTreeFlag(rangeCmd)
	rangeCmd.Flags().String("anchor", "", "Only search inside this node (ID or ref, default: root)")
	rangeCmd.Flags().String("start", "", "Start node (ID or ref)")
	rangeCmd.Flags().String("direction", "next", "Direction: next, previous")
	rangeCmd.Flags().String("from", "", "Continue from START:END byte offsets in the start node's text")
}

func runRange(cmd *cobra.Command, args []string) error {
	anchor, _ := cmd.Flags().GetString("anchor")
	start, _ := cmd.Flags().GetString("start")
	direction, _ := cmd.Flags().GetString("direction")
	from, _ := cmd.Flags().GetString("from")

	tree, provider, path, err := loadTree(cmd)
	if err != nil {
		return err
	}

	result, err := query.FindRange(newManager(), provider.Speller, tree, path, query.RangeRequest{
		Anchor:    anchor,
		Start:     start,
		Direction: direction,
		From:      from,
	})
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), result)
}
