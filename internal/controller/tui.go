package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/lloc/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
	cfg    StartConfig

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	closed  bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the report browser. CSV formats bypass Bubble Tea and
// write straight to the output.
func (t *TUI) Start(options ...StartOption) error {
	t.cfg = newStartConfig(options)
	if t.cfg.format.IsCSV() {
		return nil
	}

	width, height := terminalSize(t.output)

	return t.startWithModel(newReportModel(t.cfg.mode, width, height))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithMouseCellMotion(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

// ensureStarted starts the browser if DisplayReports is called without Start.
func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		return
	}

	width, height := terminalSize(t.output)
	_ = t.startWithModel(newReportModel(t.cfg.mode, width, height))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// Wait blocks until the user quits the browser.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the browser. It is safe to call more than once.
func (t *TUI) Close() {
	t.mu.Lock()
	if t.closed || t.program == nil {
		t.closed = true
		t.mu.Unlock()

		return
	}

	t.closed = true
	p, done := t.program, t.done
	t.mu.Unlock()

	p.Quit()
	<-done
}

// DisplayScanInfo sets the size of the progress bar.
func (t *TUI) DisplayScanInfo(files int, threads int) {
	t.send(scanInfoMsg{files: files, threads: threads})
}

// DisplayScannedFile advances the progress bar.
func (t *TUI) DisplayScannedFile(report m.Report) {
	t.send(fileScannedMsg{path: string(report.Source), loc: report.Totals.LOC})
}

// DisplayReports hands the reports to the browser, or writes CSV.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if t.cfg.format.IsCSV() {
		return writeCSV(t.output, reports, t.cfg.format == FormatCSVHeader)
	}

	t.ensureStarted()
	t.send(reportsMsg{reports: reports})

	return nil
}

// DisplayKeywords prints the countable lexemes as a styled grid.
func (t *TUI) DisplayKeywords(countable []string) error {
	width, _ := terminalSize(t.output)
	_, err := fmt.Fprintln(t.output, renderKeywords(countable, width))

	return err
}

func renderKeywords(countable []string, width int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	cellStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Width(keywordCellWidth(countable))

	perRow := (width - 4) / keywordCellWidth(countable)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string

	for start := 0; start < len(countable); start += perRow {
		end := min(start+perRow, len(countable))

		cells := make([]string, 0, end-start)
		for _, kw := range countable[start:end] {
			cells = append(cells, cellStyle.Render(kw))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))

	title := titleStyle.Render(fmt.Sprintf("Countable keywords (%d)", len(countable)))

	return lipgloss.JoinVertical(lipgloss.Left, title, grid)
}

func keywordCellWidth(countable []string) int {
	widest := 1
	for _, kw := range countable {
		widest = max(widest, lipgloss.Width(kw))
	}

	return widest + 2
}

// terminalSize returns the size of w when it is a terminal, or 80x24.
func terminalSize(w io.Writer) (int, int) {
	file, ok := w.(*os.File)
	if !ok {
		return defaultWidth, defaultHeight
	}

	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth, defaultHeight
	}

	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return defaultWidth, defaultHeight
	}

	return width, height
}
