package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	m "github.com/mouse-blink/lloc/internal/model"
)

const debugFileExt = ".dbg"

// DebugLog opens the trace sink written while scanning with --debug.
type DebugLog interface {
	Open(dir m.Path) (*slog.Logger, io.Closer, error)
}

// LocalDebugLog appends trace records to <dir>/YYYYMMDD.dbg.
type LocalDebugLog struct {
	now func() time.Time
}

// NewLocalDebugLog constructs a LocalDebugLog using the wall clock.
func NewLocalDebugLog() *LocalDebugLog {
	return &LocalDebugLog{now: time.Now}
}

// Open creates the directory if needed and returns a debug-level logger over
// the day's trace file. The caller closes the returned Closer.
func (d *LocalDebugLog) Open(dir m.Path) (*slog.Logger, io.Closer, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(string(dir), reportDirPerm); err != nil {
		return nil, nil, fmt.Errorf("create debug dir: %w", err)
	}

	now := time.Now
	if d.now != nil {
		now = d.now
	}

	path := filepath.Join(string(dir), DebugFileName(now()))

	// #nosec G304 - path is built from the user's --debug-dir
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, reportFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}

	return NewTraceLogger(file), file, nil
}

// DebugFileName returns the trace file name for the given day.
func DebugFileName(t time.Time) string {
	return t.Format("20060102") + debugFileExt
}

// NewTraceLogger returns a debug-level text logger without timestamps.
func NewTraceLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	})

	return slog.New(handler)
}
