package storage

import "errors"

var (
	// ErrNoState is returned when no snapshot is persisted under the key.
	ErrNoState = errors.New("no persisted state")

	// ErrCorruptState is returned when the persisted snapshot cannot be
	// decoded. Callers fall back to the compiled-in initial state.
	ErrCorruptState = errors.New("corrupt persisted state")
)
