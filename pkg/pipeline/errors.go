package pipeline

import "errors"

var (
	// ErrNoColumnsSelected is returned when a run has nothing to translate.
	ErrNoColumnsSelected = errors.New("no columns selected for translation")

	// ErrColumnNotFound is returned when a selected column is missing
	// from the input table.
	ErrColumnNotFound = errors.New("selected column not found in table")

	// ErrNoEngine is returned when the orchestrator is built without a
	// primary engine.
	ErrNoEngine = errors.New("no translation engine configured")

	// ErrRunCancelled is returned when the context is cancelled between
	// batches. Partially completed batches are allowed to finish.
	ErrRunCancelled = errors.New("run cancelled")
)
