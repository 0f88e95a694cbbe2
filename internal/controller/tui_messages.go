package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/lloc/internal/model"
)

// Message types.
type tickMsg time.Time

type scanInfoMsg struct {
	files   int
	threads int
}

type fileScannedMsg struct {
	path string
	loc  uint64
}

type reportsMsg struct {
	reports []m.Report
}

// List item types.
type fileItem struct {
	path      string
	loc       uint64
	functions int
}

func (f fileItem) FilterValue() string {
	return f.path
}

type functionItem struct {
	path string
	name string
	loc  uint64
}

func (f functionItem) FilterValue() string {
	return fmt.Sprintf("%s %s", f.name, f.path)
}
