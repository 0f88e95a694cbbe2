package domain_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/lloc/internal/adapter"
	adaptermocks "github.com/mouse-blink/lloc/internal/adapter/mocks"
	"github.com/mouse-blink/lloc/internal/controller"
	controllermocks "github.com/mouse-blink/lloc/internal/controller/mocks"
	"github.com/mouse-blink/lloc/internal/domain"
	domainmocks "github.com/mouse-blink/lloc/internal/domain/mocks"
	"github.com/mouse-blink/lloc/internal/domain/keywords"
	m "github.com/mouse-blink/lloc/internal/model"
)

type workflowMocks struct {
	fs      *adaptermocks.MockSourceFSAdapter
	store   *adaptermocks.MockReportStore
	debug   *adaptermocks.MockDebugLog
	ui      *controllermocks.MockUI
	counter *domainmocks.MockCounter
}

func newWorkflowMocks(t *testing.T) (workflowMocks, domain.Workflow) {
	t.Helper()

	mocks := workflowMocks{
		fs:      adaptermocks.NewMockSourceFSAdapter(t),
		store:   adaptermocks.NewMockReportStore(t),
		debug:   adaptermocks.NewMockDebugLog(t),
		ui:      controllermocks.NewMockUI(t),
		counter: domainmocks.NewMockCounter(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.store, mocks.debug, mocks.ui, mocks.counter, nil)

	return mocks, wf
}

func reportFor(path m.Path, loc uint64) m.Report {
	return m.Report{Source: path, Totals: m.Totals{LOC: loc}}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestWorkflow_Count_Success(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	sources := []m.Path{"a.c", "b.c", "c.c"}
	locs := map[m.Path]uint64{"a.c": 1, "b.c": 2, "c.c": 3}

	mocks.fs.EXPECT().Get([]m.Path{"src/..."}, []string{"vendor"}).Return(sources, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayScanInfo(3, 2).Return()
	mocks.counter.EXPECT().Count(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, path m.Path, _ *slog.Logger) (m.Report, error) {
			return reportFor(path, locs[path]), nil
		}).Times(3)
	mocks.ui.EXPECT().DisplayScannedFile(mock.Anything).Return().Times(3)
	mocks.store.EXPECT().SaveReports(m.Path("out"), mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayReports([]m.Report{
		reportFor("a.c", 1), reportFor("b.c", 2), reportFor("c.c", 3),
	}).Return(nil)
	mocks.ui.EXPECT().Wait().Return()
	mocks.ui.EXPECT().Close().Return()

	err := wf.Count(context.Background(), domain.CountArgs{
		Paths:   []m.Path{"src/..."},
		Exclude: []string{"vendor"},
		Threads: 2,
		Reports: "out",
	})

	require.NoError(t, err)
}

func TestWorkflow_Count_PassesFormatToUI(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Path{"a.c"}, nil)
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	simple := controller.NewSimpleUI(cmd)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(options ...controller.StartOption) error {
			return simple.Start(options...)
		})
	mocks.ui.EXPECT().DisplayScanInfo(1, 1).Return()
	mocks.counter.EXPECT().Count(mock.Anything, m.Path("a.c"), mock.Anything).Return(reportFor("a.c", 1), nil)
	mocks.ui.EXPECT().DisplayScannedFile(mock.Anything).Return()
	mocks.ui.EXPECT().DisplayReports(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Wait().Return()
	mocks.ui.EXPECT().Close().Return()

	err := wf.Count(context.Background(), domain.CountArgs{
		Paths:  []m.Path{"a.c"},
		Format: controller.FormatCSVHeader,
	})

	require.NoError(t, err)

	// csv output suppresses the scan banner
	simple.DisplayScanInfo(1, 1)
	assert.Empty(t, out.String())
}

func TestWorkflow_Count_NoSources(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"empty"}})

	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestWorkflow_Count_MissingPath(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	pathErr := &fs.PathError{Op: "stat", Path: "nope", Err: fs.ErrNotExist}
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, pathErr)

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"nope"}})

	assert.ErrorIs(t, err, domain.ErrInputUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWorkflow_Count_GetSourcesError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("invalid exclude pattern"))

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"."}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get sources")
	assert.NotErrorIs(t, err, domain.ErrInputUnavailable)
}

func TestWorkflow_Count_CounterErrorStopsRun(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	errRead := errors.New("read failed")

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Path{"a.c", "b.c"}, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayScanInfo(2, 1).Return()
	mocks.counter.EXPECT().Count(mock.Anything, m.Path("a.c"), mock.Anything).Return(m.Report{}, errRead)
	mocks.counter.EXPECT().Count(mock.Anything, m.Path("b.c"), mock.Anything).
		RunAndReturn(func(ctx context.Context, path m.Path, _ *slog.Logger) (m.Report, error) {
			return m.Report{}, ctx.Err()
		}).Maybe()
	mocks.ui.EXPECT().Close().Return()

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"."}, Threads: 1, Reports: "out"})

	assert.ErrorIs(t, err, errRead)
	assert.Contains(t, err.Error(), "count a.c")
}

func TestWorkflow_Count_RespectsParallelLimit(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	sources := []m.Path{"1.c", "2.c", "3.c", "4.c", "5.c", "6.c"}

	var running, peak atomic.Int32

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return(sources, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayScanInfo(6, 2).Return()
	mocks.counter.EXPECT().Count(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, path m.Path, _ *slog.Logger) (m.Report, error) {
			now := running.Add(1)
			for {
				old := peak.Load()
				if now <= old || peak.CompareAndSwap(old, now) {
					break
				}
			}
			defer running.Add(-1)

			return reportFor(path, 1), nil
		})
	mocks.ui.EXPECT().DisplayScannedFile(mock.Anything).Return()
	mocks.ui.EXPECT().DisplayReports(mock.MatchedBy(func(reports []m.Report) bool {
		if len(reports) != len(sources) {
			return false
		}
		for i, r := range reports {
			if r.Source != sources[i] {
				return false
			}
		}
		return true
	})).Return(nil)
	mocks.ui.EXPECT().Wait().Return()
	mocks.ui.EXPECT().Close().Return()

	require.NoError(t, wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"."}, Threads: 2}))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestWorkflow_Count_SaveReportsError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Path{"a.c"}, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayScanInfo(1, 1).Return()
	mocks.counter.EXPECT().Count(mock.Anything, mock.Anything, mock.Anything).Return(reportFor("a.c", 1), nil)
	mocks.ui.EXPECT().DisplayScannedFile(mock.Anything).Return()
	mocks.store.EXPECT().SaveReports(m.Path("out"), mock.Anything).Return(errors.New("disk full"))
	mocks.ui.EXPECT().Close().Return()

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"a.c"}, Reports: "out"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save reports")
}

func TestWorkflow_Count_StartError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Path{"a.c"}, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no tty"))

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"a.c"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start ui")
}

func TestWorkflow_Count_DebugLog(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	var buf bytes.Buffer

	closed := false
	logger := adapter.NewTraceLogger(&buf)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Path{"a.c"}, nil)
	mocks.debug.EXPECT().Open(m.Path("logs")).Return(logger, io.Closer(closerFunc(func() error {
		closed = true
		return nil
	})), nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayScanInfo(1, 1).Return()
	mocks.counter.EXPECT().Count(mock.Anything, m.Path("a.c"), logger).Return(reportFor("a.c", 1), nil)
	mocks.ui.EXPECT().DisplayScannedFile(mock.Anything).Return()
	mocks.ui.EXPECT().DisplayReports(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Wait().Return()
	mocks.ui.EXPECT().Close().Return()

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"a.c"}, Debug: true, DebugDir: "logs"})

	require.NoError(t, err)
	assert.True(t, closed, "trace file is closed after the run")
}

func TestWorkflow_Count_DebugLogError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything).Return([]m.Path{"a.c"}, nil)
	mocks.debug.EXPECT().Open(mock.Anything).Return(nil, nil, errors.New("read-only"))

	err := wf.Count(context.Background(), domain.CountArgs{Paths: []m.Path{"a.c"}, Debug: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open debug log")
}

func TestWorkflow_View(t *testing.T) {
	t.Run("displays stored reports", func(t *testing.T) {
		mocks, wf := newWorkflowMocks(t)

		reports := []m.Report{reportFor("a.c", 1)}

		mocks.store.EXPECT().LoadReports(m.Path(".lloc-reports")).Return(reports, nil)
		mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
		mocks.ui.EXPECT().DisplayReports(reports).Return(nil)
		mocks.ui.EXPECT().Wait().Return()
		mocks.ui.EXPECT().Close().Return()

		require.NoError(t, wf.View(domain.ViewArgs{Reports: ".lloc-reports"}))
	})

	t.Run("missing reports", func(t *testing.T) {
		mocks, wf := newWorkflowMocks(t)

		mocks.store.EXPECT().LoadReports(mock.Anything).Return(nil, adapter.ErrReportsNotFound)

		err := wf.View(domain.ViewArgs{Reports: "nowhere"})
		assert.ErrorIs(t, err, adapter.ErrReportsNotFound)
	})

	t.Run("display error", func(t *testing.T) {
		mocks, wf := newWorkflowMocks(t)

		mocks.store.EXPECT().LoadReports(mock.Anything).Return([]m.Report{}, nil)
		mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
		mocks.ui.EXPECT().DisplayReports(mock.Anything).Return(errors.New("broken pipe"))
		mocks.ui.EXPECT().Close().Return()

		err := wf.View(domain.ViewArgs{Reports: "r"})
		assert.ErrorContains(t, err, "display reports")
	})
}

func TestWorkflow_Keywords(t *testing.T) {
	t.Run("default table", func(t *testing.T) {
		mocks, wf := newWorkflowMocks(t)

		mocks.ui.EXPECT().DisplayKeywords(keywords.Default().CountableEntries()).Return(nil)

		require.NoError(t, wf.Keywords())
	})

	t.Run("custom table", func(t *testing.T) {
		table, err := keywords.NewTable([]keywords.Keyword{{Lexeme: "x", Countable: true}, {Lexeme: "y"}})
		require.NoError(t, err)

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().DisplayKeywords([]string{"x"}).Return(nil)

		wf := domain.NewWorkflow(nil, nil, nil, ui, nil, table)
		require.NoError(t, wf.Keywords())
	})
}

func TestWorkflow_Count_Integration(t *testing.T) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	ui := controllermocks.NewMockUI(t)

	var shown []m.Report

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().DisplayScanInfo(2, 4).Return()
	ui.EXPECT().DisplayScannedFile(mock.Anything).Return()
	ui.EXPECT().DisplayReports(mock.Anything).Run(func(reports []m.Report) { shown = reports }).Return(nil)
	ui.EXPECT().Wait().Return()
	ui.EXPECT().Close().Return()

	reportsDir := m.Path(t.TempDir())
	store := adapter.NewReportStore()

	wf := domain.NewWorkflow(fsAdapter, store, adapter.NewLocalDebugLog(), ui, domain.NewCounter(fsAdapter, nil), nil)

	err := wf.Count(context.Background(), domain.CountArgs{
		Paths:   []m.Path{examplePath(t, "nested") + "/..."},
		Threads: 4,
		Reports: reportsDir,
	})
	require.NoError(t, err)

	require.Len(t, shown, 2)

	byName := map[string]m.Report{}
	for _, r := range shown {
		byName[r.Source.Base()] = r
	}

	assert.Equal(t, uint64(2), byName["top.c"].Totals.LOC)
	assert.Equal(t, []m.Function{{Name: "top", LOC: 2}}, byName["top.c"].Functions)
	assert.Equal(t, uint64(4), byName["util.c"].Totals.Physical)

	saved, err := store.LoadReports(reportsDir)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}
