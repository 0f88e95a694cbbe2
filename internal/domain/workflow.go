// Package domain drives a count: it resolves source paths, scans each file
// with the lexer, and hands the reports to storage and the UI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/lloc/internal/adapter"
	"github.com/mouse-blink/lloc/internal/controller"
	"github.com/mouse-blink/lloc/internal/domain/keywords"
	m "github.com/mouse-blink/lloc/internal/model"
)

// CountArgs holds the inputs of a count run.
type CountArgs struct {
	Paths    []m.Path
	Exclude  []string
	Threads  int
	Format   controller.Format
	Reports  m.Path // empty: do not persist
	Debug    bool
	DebugDir m.Path
}

// ViewArgs holds the inputs for redisplaying saved reports.
type ViewArgs struct {
	Reports m.Path
	Format  controller.Format
}

// Workflow is the entry point used by the commands.
type Workflow interface {
	Count(ctx context.Context, args CountArgs) error
	View(args ViewArgs) error
	Keywords() error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	debugLog    adapter.DebugLog
	ui          controller.UI
	counter     Counter
	table       *keywords.Table
}

// NewWorkflow wires a Workflow from its collaborators. A nil table selects
// the built-in keyword table.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	debugLog adapter.DebugLog,
	ui controller.UI,
	counter Counter,
	table *keywords.Table,
) Workflow {
	if table == nil {
		table = keywords.Default()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		debugLog:    debugLog,
		ui:          ui,
		counter:     counter,
		table:       table,
	}
}

// Count scans every source under args.Paths and displays one report per
// file, in the order the paths resolved.
func (w *workflow) Count(ctx context.Context, args CountArgs) error {
	sources, err := w.getSources(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	logger, closeLog, err := w.openTrace(args)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := w.ui.Start(controller.WithCountMode(), controller.WithFormat(args.Format)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	w.ui.DisplayScanInfo(len(sources), threads)

	reports, err := w.countAll(ctx, sources, threads, logger)
	if err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	if err := w.ui.DisplayReports(reports); err != nil {
		return fmt.Errorf("display reports: %w", err)
	}

	w.ui.Wait()

	return nil
}

// View loads reports saved by an earlier count and displays them.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode(), controller.WithFormat(args.Format)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayReports(reports); err != nil {
		return fmt.Errorf("display reports: %w", err)
	}

	w.ui.Wait()

	return nil
}

// Keywords lists the lexemes that count as a logical line.
func (w *workflow) Keywords() error {
	return w.ui.DisplayKeywords(w.table.CountableEntries())
}

func (w *workflow) getSources(paths []m.Path, exclude []string) ([]m.Path, error) {
	sources, err := w.fsAdapter.Get(paths, exclude)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
		}

		return nil, fmt.Errorf("get sources: %w", err)
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	return sources, nil
}

func (w *workflow) openTrace(args CountArgs) (*slog.Logger, func(), error) {
	if !args.Debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	logger, closer, err := w.debugLog.Open(args.DebugDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}

	return logger, func() { closeQuietly(closer) }, nil
}

// countAll scans sources with at most threads workers. Results keep the
// input order; the first failure cancels the remaining scans.
func (w *workflow) countAll(ctx context.Context, sources []m.Path, threads int, logger *slog.Logger) ([]m.Report, error) {
	reports := make([]m.Report, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, source := range sources {
		g.Go(func() error {
			report, err := w.counter.Count(gctx, source, logger)
			if err != nil {
				return fmt.Errorf("count %s: %w", source, err)
			}

			reports[i] = report
			w.ui.DisplayScannedFile(report)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
