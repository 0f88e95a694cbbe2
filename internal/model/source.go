// Package model defines the data structures shared by the counter, the
// report store and the UI layer.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path, the "program name" column of
// every report.
func (p Path) Base() string {
	return filepath.Base(string(p))
}
