package cmd

import (
	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/query"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List search keys and meta-keys",
	Long:  `List every search key accepted by 'axsearch search' with a description.
Referential keys compare candidates against the start node and match nothing
without --start. Meta-keys expand to several keys.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Fprint(cmd.OutOrStdout(), query.Keys())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
