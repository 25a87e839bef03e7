package caged

import "errors"

var (
	// ErrUnknownShape is returned for shape labels outside C, A, G, E, D
	ErrUnknownShape = errors.New("unknown CAGED shape")
	// ErrUnsupportedQuality is returned when no template covers the quality
	ErrUnsupportedQuality = errors.New("no template for chord quality")
	// ErrUntransposableShape is returned when a transposition leaves the fretboard
	ErrUntransposableShape = errors.New("shape cannot be transposed to root")
	// ErrUnknownChord is returned when the oracle has no tones for the chord
	ErrUnknownChord = errors.New("unknown chord")
	// ErrInvalidFrets is returned for fret patterns with values outside [-1, 24]
	ErrInvalidFrets = errors.New("invalid fret pattern")
)
