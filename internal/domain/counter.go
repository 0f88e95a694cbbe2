package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/mouse-blink/lloc/internal/adapter"
	"github.com/mouse-blink/lloc/internal/domain/keywords"
	"github.com/mouse-blink/lloc/internal/domain/lexer"
	m "github.com/mouse-blink/lloc/internal/model"
)

// Counter scans one source file and produces its report.
type Counter interface {
	Count(ctx context.Context, path m.Path, logger *slog.Logger) (m.Report, error)
}

type counter struct {
	fsAdapter adapter.SourceFSAdapter
	table     *keywords.Table
}

// NewCounter constructs a Counter that reads files through fsAdapter and
// classifies tokens with table. A nil table selects the built-in one.
func NewCounter(fsAdapter adapter.SourceFSAdapter, table *keywords.Table) Counter {
	if table == nil {
		table = keywords.Default()
	}

	return &counter{fsAdapter: fsAdapter, table: table}
}

// Count runs a fresh scanner over path. Malformed C never fails the count;
// only unreadable input does.
func (c *counter) Count(ctx context.Context, path m.Path, logger *slog.Logger) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger = logger.With("file", string(path))

	rc, err := c.fsAdapter.Open(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer rc.Close()

	scanner := lexer.NewScanner(lexer.WithTable(c.table), lexer.WithLogger(logger))
	hash := sha256.New()

	if err := scanner.Scan(io.TeeReader(&ctxReader{ctx: ctx, r: rc}, hash)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.Report{}, ctxErr
		}

		return m.Report{}, fmt.Errorf("%w: read %s: %w", ErrInputUnavailable, path, err)
	}

	return m.Report{
		Source:    path,
		Hash:      hex.EncodeToString(hash.Sum(nil)),
		Totals:    scanner.Totals(),
		Functions: scanner.Functions(),
	}, nil
}

// ctxReader stops a long read once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	return r.r.Read(p)
}
