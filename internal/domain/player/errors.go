package player

import crerr "github.com/cockroachdb/errors"

var (
	// ErrDataLoad marks a source that is missing, unreadable, or not tabular.
	ErrDataLoad = crerr.New("player data load failed")
	// ErrPlayerNotFound is returned when a selected name is absent from the current view.
	ErrPlayerNotFound = crerr.New("player not found")
	// ErrMissingColumn is returned when a feature depends on a column the table lacks.
	ErrMissingColumn = crerr.New("required column missing")
)
