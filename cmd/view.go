package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lloc/internal/domain"
	m "github.com/mouse-blink/lloc/internal/model"
)

var viewWksFlag bool
var viewHeaderFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved reports",
		Long:  "View reports saved by an earlier count with --reports. Reads " + defaultReportsDir + " unless --reports is given.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reports := reportsFlag
			if reports == "" {
				reports = defaultReportsDir
			}

			return workflow.View(domain.ViewArgs{
				Reports: m.Path(reports),
				Format:  parseFormat(viewWksFlag, viewHeaderFlag),
			})
		},
	}
	cmd.Flags().BoolVarP(&viewWksFlag, "wks", "w", false, "print comma separated values instead of tables")
	cmd.Flags().BoolVarP(&viewHeaderFlag, "header", "H", false, "print comma separated values with a header row")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
