// Package controller renders count reports on the terminal, either as plain
// tables, as CSV, or through an interactive Bubble Tea browser.
package controller

import (
	m "github.com/mouse-blink/lloc/internal/model"
)

// Format selects how reports are printed.
type Format int

// Available Format values.
const (
	FormatTable Format = iota
	FormatCSV
	FormatCSVHeader
)

// IsCSV reports whether the format writes comma separated rows.
func (f Format) IsCSV() bool {
	return f == FormatCSV || f == FormatCSVHeader
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCount StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	format Format
}

// WithCountMode shows scan progress before the reports.
func WithCountMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCount
	}
}

// WithViewMode shows previously saved reports only.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithFormat sets the report output format.
func WithFormat(format Format) StartOption {
	return func(c *StartConfig) {
		c.format = format
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying count results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayScanInfo(files int, threads int)
	DisplayScannedFile(report m.Report)
	DisplayReports(reports []m.Report) error
	DisplayKeywords(countable []string) error
}
