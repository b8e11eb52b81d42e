package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when the number is still invalid after
	// the configured number of prompts.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
	// ErrNoCountries is returned when the field has no selectable countries.
	ErrNoCountries = errors.New("tui: no countries to select")
)
