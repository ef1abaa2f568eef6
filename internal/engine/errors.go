package engine

import "errors"

var (
	// ErrOutOfBounds means a coordinate outside the grid reached the engine.
	// Front ends bounds-check device positions, so this is a wiring error.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidAnchor is returned when a drag starts on an empty cell.
	ErrInvalidAnchor = errors.New("selection anchor is empty")

	// ErrAlreadyRunning is returned by Clock.Start on a clock that was not stopped.
	ErrAlreadyRunning = errors.New("clock already running")
)
