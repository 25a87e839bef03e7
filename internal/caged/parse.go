package caged

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

// ParseFrets reads six fret tokens, low E first. "x", "X" and "-1" mute a string.
func ParseFrets(tokens []string) (Frets, error) {
	var frets Frets
	if len(tokens) != theory.NumStrings {
		return frets, fmt.Errorf("%w: need %d frets, got %d", ErrInvalidFrets, theory.NumStrings, len(tokens))
	}
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if strings.EqualFold(token, "x") {
			frets[i] = theory.MutedFret
			continue
		}
		fret, err := strconv.Atoi(token)
		if err != nil {
			return frets, fmt.Errorf("%w: string %d: %q", ErrInvalidFrets, i, token)
		}
		if !theory.ValidFret(fret) {
			return frets, fmt.Errorf("%w: string %d: fret %d outside [%d, %d]",
				ErrInvalidFrets, i, fret, theory.MutedFret, theory.MaxFret)
		}
		frets[i] = fret
	}
	return frets, nil
}

// FretsFromSlice copies exactly six values, rejecting anything off the fretboard
func FretsFromSlice(values []int) (Frets, error) {
	var frets Frets
	if len(values) != theory.NumStrings {
		return frets, fmt.Errorf("%w: need %d frets, got %d", ErrInvalidFrets, theory.NumStrings, len(values))
	}
	copy(frets[:], values)
	if !frets.Valid() {
		return frets, fmt.Errorf("%w: %v", ErrInvalidFrets, values)
	}
	return frets, nil
}
