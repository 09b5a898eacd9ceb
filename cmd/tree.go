package cmd

import (
	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/query"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "List the linked tree with IDs, refs and paths",
	Long:  `Print the tree in reading order as a flat list. Each node shows its ID, ref,
traits and a role breadcrumb, so IDs and refs can be picked for --start and
--anchor.

Examples:
  axsearch tree --tree page.yaml
  axsearch tree --tree page.yaml --roles heading,lnk --text install
  axsearch tree --tree page.yaml --with-ignored --raw`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addTreeFlag(treeCmd)
	treeCmd.Flags().String("roles", "", "Comma-separated roles to keep (e.g. \"heading,lnk,btn\")")
	treeCmd.Flags().String("text", "", "Only keep nodes whose text contains this string")
	treeCmd.Flags().Bool("with-ignored", false, "Include ignored nodes")
}

func runTree(cmd *cobra.Command, args []string) error {
	roles, _ := cmd.Flags().GetString("roles")
	text, _ := cmd.Flags().GetString("text")
	withIgnored, _ := cmd.Flags().GetBool("with-ignored")

	tree, _, path, err := loadTree(cmd)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), query.Tree(tree, path, query.TreeRequest{
		Roles:       query.SplitList(roles),
		Text:        text,
		WithIgnored: withIgnored,
	}))
}
