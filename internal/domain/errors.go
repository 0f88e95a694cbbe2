package domain

import "errors"

var (
	// ErrInputUnavailable is returned when a source cannot be stat'ed,
	// opened or read. The underlying cause is wrapped alongside it.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrNoSources is returned when none of the given paths resolve to a
	// C or C++ source file.
	ErrNoSources = errors.New("no C/C++ sources found")
)
