// Package cmd provides the root command and CLI setup for lloc.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/lloc/internal/adapter"
	"github.com/mouse-blink/lloc/internal/controller"
	"github.com/mouse-blink/lloc/internal/domain"
	m "github.com/mouse-blink/lloc/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var debugLog adapter.DebugLog
var counter domain.Counter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	debugLog = adapter.NewLocalDebugLog()
	counter = domain.NewCounter(fsAdapter, nil)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		debugLog,
		ui,
		counter,
		nil,
	)
}

const defaultReportsDir = ".lloc-reports"

var parallelFlag int
var excludeFlags []string
var wksFlag bool
var headerFlag bool
var debugFlag bool
var debugDirFlag string
var reportsFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lloc [paths...]",
		Short: "Logical lines of code for C and C++",
		Long: `lloc counts logical lines of code in C and C++ sources, in total and
per function, together with physical lines and comment density.

A logical line is one of the terminators or keywords listed by
"lloc keywords". Comments, string and character literals and the bodies
of conditional preprocessor blocks are not counted.

Supports Go-style path patterns:
  - ...            recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan the top level of multiple directories
  - main.c         scan a single file, whatever its extension`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Count(cmd.Context(), domain.CountArgs{
				Paths:    parsePaths(args),
				Exclude:  excludeFlags,
				Threads:  parallelFlag,
				Format:   parseFormat(wksFlag, headerFlag),
				Reports:  m.Path(reportsFlag),
				Debug:    debugFlag,
				DebugDir: m.Path(debugDirFlag),
			})
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files counted in parallel")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVarP(&wksFlag, "wks", "w", false, "print comma separated values instead of tables")
	cmd.Flags().BoolVarP(&headerFlag, "header", "H", false, "print comma separated values with a header row")
	cmd.Flags().BoolVarP(&debugFlag, "debug", "d", false, "write a trace of every counted token to a dated .dbg file")
	cmd.Flags().StringVar(&debugDirFlag, "debug-dir", ".", "directory for debug trace files")
	cmd.PersistentFlags().StringVarP(&reportsFlag, "reports", "r", "", "directory to save or read per-file YAML reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseFormat(wks, header bool) controller.Format {
	switch {
	case header:
		return controller.FormatCSVHeader
	case wks:
		return controller.FormatCSV
	default:
		return controller.FormatTable
	}
}
