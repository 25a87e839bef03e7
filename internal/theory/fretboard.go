package theory

import "fmt"

// Tuning lists the open string pitch classes from the lowest string (index 0) up
type Tuning [NumStrings]PitchClass

// StandardTuning is E A D G B E
var StandardTuning = Tuning{4, 9, 2, 7, 11, 4}

// FretPitchClass returns the pitch class sounding on a string at a fret
func (t Tuning) FretPitchClass(stringIndex, fret int) (PitchClass, error) {
	if stringIndex < 0 || stringIndex >= NumStrings {
		return 0, fmt.Errorf("%w: string index %d", ErrInvalidFret, stringIndex)
	}
	if fret < MutedFret || fret > MaxFret {
		return 0, fmt.Errorf("%w: fret %d on string %d", ErrInvalidFret, fret, stringIndex)
	}
	if fret == MutedFret {
		return 0, fmt.Errorf("%w: string %d", ErrMutedString, stringIndex)
	}
	return t[stringIndex].Transpose(fret), nil
}

// FindFretForPitchClass returns the fret in the first octave (0-11) where the
// string produces the target pitch class.
func (t Tuning) FindFretForPitchClass(target PitchClass, stringIndex int) (int, error) {
	if stringIndex < 0 || stringIndex >= NumStrings {
		return 0, fmt.Errorf("%w: string index %d", ErrInvalidFret, stringIndex)
	}
	return int(target.Transpose(-int(t[stringIndex]))), nil
}

// FretPitchClass uses standard tuning
func FretPitchClass(stringIndex, fret int) (PitchClass, error) {
	return StandardTuning.FretPitchClass(stringIndex, fret)
}

// FindFretForPitchClass uses standard tuning
func FindFretForPitchClass(target PitchClass, stringIndex int) (int, error) {
	return StandardTuning.FindFretForPitchClass(target, stringIndex)
}

// ValidFret reports whether a fret value is muted, open or on the fretboard
func ValidFret(fret int) bool {
	return fret >= MutedFret && fret <= MaxFret
}
