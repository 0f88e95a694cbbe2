package controller

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/lloc/internal/model"
)

const (
	locColumnWidth = 8
	scrollPause    = 5
)

// reportDelegate renders file rows and the function rows below them.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	selected := index == lm.Index()
	width := lm.Width() - locColumnWidth - 2

	locStyle := lipgloss.NewStyle().Width(locColumnWidth).Align(lipgloss.Right).Bold(true)
	textStyle := lipgloss.NewStyle()

	var loc uint64

	var text string

	switch it := item.(type) {
	case fileItem:
		loc = it.loc
		locStyle = locStyle.Foreground(lipgloss.Color("11"))
		textStyle = textStyle.Foreground(lipgloss.Color("14")).Bold(true)
		text = fmt.Sprintf("%s (%d functions)", it.path, it.functions)
	case functionItem:
		loc = it.loc
		locStyle = locStyle.Foreground(lipgloss.Color("2"))
		textStyle = textStyle.Foreground(lipgloss.Color("252"))
		text = "  " + it.name
	default:
		return
	}

	if selected {
		highlight := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		locStyle = locStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		textStyle = highlight
		text = animateScroll(text, width, d.offset)
	} else {
		text = truncateToWidth(text, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", locStyle.Render(formatUint(loc)), textStyle.Render(text))
}

// animateScroll shows text as a marquee once it is wider than width.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width || offset < scrollPause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	start := (offset - scrollPause) % len(runes)

	window := make([]rune, 0, width)
	for i := range width {
		window = append(window, runes[(start+i)%len(runes)])
	}

	return string(window)
}

// truncateToWidth cuts text to width cells, ending with an ellipsis.
func truncateToWidth(text string, width int) string {
	const ellipsis = "…"

	switch {
	case width <= 0:
		return ""
	case lipgloss.Width(text) <= width:
		return text
	case width == 1:
		return ellipsis
	}

	limit := width - lipgloss.Width(ellipsis)
	used := 0

	out := make([]rune, 0, len(text))
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > limit {
			break
		}

		out = append(out, r)
		used += w
	}

	return string(out) + ellipsis
}

// reportModel shows scan progress, then lets the user browse the reports.
type reportModel struct {
	mode   StartMode
	width  int
	height int

	files    int
	threads  int
	scanned  int
	lastPath string
	bar      progress.Model
	density  progress.Model

	list         list.Model
	delegate     reportDelegate
	totals       m.Totals
	reportCount  int
	functions    int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newReportModel(mode StartMode, width, height int) reportModel {
	delegate := reportDelegate{}

	items := list.New([]list.Item{}, delegate, width, height)
	items.SetShowPagination(false)
	items.SetShowFilter(true)
	items.SetShowHelp(false)
	items.SetShowTitle(false)
	items.SetShowStatusBar(false)
	items.FilterInput.Placeholder = "Filter by function or path…"

	return reportModel{
		mode:   mode,
		width:  width,
		height: height,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		density: progress.New(
			progress.WithSolidFill("6"),
			progress.WithWidth(30),
		),
		list:         items,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm reportModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.bar.Width = max(rm.width-8, 20)
		rm.list.SetWidth(rm.width)

	case tickMsg:
		if !rm.rendered || rm.list.FilterState() == list.Filtering {
			return rm, tick(time.Second / 2)
		}

		rm.animOffset++
		rm.delegate.offset = rm.animOffset
		rm.list.SetDelegate(rm.delegate)

		return rm, tick(150 * time.Millisecond)

	case tea.KeyMsg:
		return rm.handleKey(msg)

	case scanInfoMsg:
		rm.files = msg.files
		rm.threads = msg.threads

	case fileScannedMsg:
		rm.scanned++
		rm.lastPath = msg.path

	case reportsMsg:
		rm = rm.handleReports(msg.reports)
	}

	return rm, nil
}

func (rm reportModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if rm.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return rm, tea.Quit
		}
	} else if msg.String() == "ctrl+c" {
		return rm, tea.Quit
	}

	if !rm.rendered {
		return rm, nil
	}

	var cmd tea.Cmd

	rm.list, cmd = rm.list.Update(msg)

	if rm.list.Index() != rm.lastSelected {
		rm.lastSelected = rm.list.Index()
		rm.animOffset = 0
		rm.delegate.offset = 0
		rm.list.SetDelegate(rm.delegate)
	}

	return rm, cmd
}

func (rm reportModel) handleReports(reports []m.Report) reportModel {
	var items []list.Item

	rm.totals = m.Totals{}
	rm.functions = 0
	rm.reportCount = len(reports)

	for _, report := range reports {
		counted := report.Counted()
		items = append(items, fileItem{
			path:      string(report.Source),
			loc:       report.Totals.LOC,
			functions: len(counted),
		})

		for _, fn := range counted {
			items = append(items, functionItem{path: string(report.Source), name: fn.Name, loc: fn.LOC})
		}

		rm.functions += len(counted)
		rm.totals.LOC += report.Totals.LOC
		rm.totals.Physical += report.Totals.Physical
		rm.totals.Comment += report.Totals.Comment
	}

	rm.list.SetItems(items)
	rm.rendered = true

	if rm.lastSelected == -1 {
		rm.lastSelected = 0
	}

	return rm
}

func (rm reportModel) View() string {
	if !rm.rendered {
		return rm.viewProgress()
	}

	return rm.viewReports()
}

func (rm reportModel) viewProgress() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	if rm.mode == ModeView {
		return titleStyle.Render("Loading saved reports…") + "\n"
	}

	var percent float64
	if rm.files > 0 {
		percent = float64(rm.scanned) / float64(rm.files)
	}

	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 0, 2)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 0, 0, 2)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Counting logical lines"),
		infoStyle.Render(fmt.Sprintf("%d/%d files   %d worker(s)", rm.scanned, rm.files, rm.threads)),
		lipgloss.NewStyle().Padding(1, 0, 1, 2).Render(rm.bar.ViewAs(percent)),
		pathStyle.Render(truncateToWidth(filepath.Base(rm.lastPath), rm.width-4)),
	)
}

func (rm reportModel) viewReports() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 0, 2)

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	summary := summaryStyle.Render(fmt.Sprintf(
		"LOC: %s   Files: %s   Functions: %s   Physical: %s   Comment: %s",
		accent.Render(formatUint(rm.totals.LOC)),
		accent.Render(fmt.Sprintf("%d", rm.reportCount)),
		accent.Render(fmt.Sprintf("%d", rm.functions)),
		accent.Render(formatUint(rm.totals.Physical)),
		accent.Render(formatUint(rm.totals.Comment)),
	))

	density := summaryStyle.Render("Comment density " + rm.density.ViewAs(rm.totals.CommentDensity()))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Logical lines of code"),
		summary,
		density,
		rm.renderTable(),
		footer,
	)
}

func (rm reportModel) renderTable() string {
	// title 2, summary 1, density 1, footer 1, border 2, header 2
	listHeight := max(rm.height-9, 5)
	// margin 2, border 2, padding 2
	listWidth := rm.width - 6

	rm.list.SetHeight(listHeight)
	rm.list.SetWidth(listWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%*s  %s", locColumnWidth, "LOC", "File / Function"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, rm.list.View()))
}
