package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/lloc/internal/model"
)

// SimpleUI implements UI with plain tables written through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start records the output format and mode.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayScanInfo announces the scan in table mode. CSV output stays clean.
func (s *SimpleUI) DisplayScanInfo(files int, threads int) {
	if s.cfg.format.IsCSV() {
		return
	}

	s.printf("Counting %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayScannedFile is a no-op: SimpleUI prints everything at the end.
func (s *SimpleUI) DisplayScannedFile(_ m.Report) {}

// DisplayReports prints the function table and the line summary, or CSV
// rows when a CSV format was requested.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if s.cfg.format.IsCSV() {
		return writeCSV(s.cmd.OutOrStdout(), reports, s.cfg.format == FormatCSVHeader)
	}

	if len(reports) == 0 {
		s.printf("No reports to display\n")
		return nil
	}

	s.printf("\n%s", renderFunctionTable(reports))
	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

// DisplayKeywords prints the countable lexemes, one per line.
func (s *SimpleUI) DisplayKeywords(countable []string) error {
	s.printf("%s\n", strings.Join(countable, "\n"))
	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderFunctionTable(reports []m.Report) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Function", "Function LOC", "Total LOC"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var functions int

	var functionLOC, totalLOC uint64

	for _, report := range reports {
		table.Append([]string{string(report.Source), "", "", formatUint(report.Totals.LOC)})

		for _, fn := range report.Counted() {
			table.Append([]string{"", fn.Name, formatUint(fn.LOC), ""})
			functions++
		}

		functionLOC += report.FunctionLOC()
		totalLOC += report.Totals.LOC
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		fmt.Sprintf("Functions %d", functions),
		formatUint(functionLOC),
		formatUint(totalLOC),
	})

	table.Render()

	return buf.String()
}

func renderSummaryTable(reports []m.Report) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Physical LOC", "Comment LOC", "Comment Density"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var sum m.Totals

	for _, report := range reports {
		t := report.Totals
		table.Append([]string{string(report.Source), formatUint(t.Physical), formatUint(t.Comment), formatDensity(t.CommentDensity())})

		sum.Physical += t.Physical
		sum.Comment += t.Comment
	}

	table.SetFooter([]string{"Total", formatUint(sum.Physical), formatUint(sum.Comment), formatDensity(sum.CommentDensity())})
	table.Render()

	return buf.String()
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatDensity(d float64) string {
	return fmt.Sprintf("%.1f%%", d*100)
}
