package cmd

import (
	"github.com/spf13/cobra"
)

// keywordsCmd represents the keywords command.
var keywordsCmd = newKeywordsCmd()

func newKeywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords and symbols counted as logical lines",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Keywords()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
