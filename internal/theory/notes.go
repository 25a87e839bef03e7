package theory

import (
	"errors"
	"fmt"
	"strings"
)

// Fretboard constants for a six string guitar
const (
	NumStrings      = 6
	NumPitchClasses = 12
	MutedFret       = -1
	OpenFret        = 0
	MaxFret         = 24
)

var (
	// ErrInvalidNote is returned when a note name is not a letter A-G with an optional accidental
	ErrInvalidNote = errors.New("invalid note")
	// ErrInvalidFret is returned for fret values or string indexes outside the fretboard
	ErrInvalidFret = errors.New("invalid fret")
	// ErrMutedString is returned when asking for the pitch of a muted string
	ErrMutedString = errors.New("string is muted")
)

// PitchClass is a note identity modulo the octave, 0 (C) through 11 (B)
type PitchClass int

// chromaticScale spells every pitch class with sharps
var chromaticScale = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// flatToSharp maps flat spellings to the canonical sharp name
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// Note letter offsets from C
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// String returns the sharp spelling of the pitch class
func (p PitchClass) String() string {
	return chromaticScale[p.normalize()]
}

// Transpose returns the pitch class the given number of semitones away
func (p PitchClass) Transpose(semitones int) PitchClass {
	return PitchClass(int(p) + semitones).normalize()
}

func (p PitchClass) normalize() PitchClass {
	return PitchClass(((int(p) % NumPitchClasses) + NumPitchClasses) % NumPitchClasses)
}

// PitchClassOf resolves a note name like "C", "f#", "Bb" or "E♭" to its pitch class.
// Flat spellings are normalized to sharps before lookup.
func PitchClassOf(noteName string) (PitchClass, error) {
	name := strings.TrimSpace(noteName)
	name = strings.ReplaceAll(name, "♯", "#")
	name = strings.ReplaceAll(name, "♭", "b")
	if len(name) == 0 || len(name) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, noteName)
	}

	letter := strings.ToUpper(name[:1])
	name = letter + name[1:]
	if sharp, ok := flatToSharp[name]; ok {
		name = sharp
	}

	offset, ok := letterOffsets[name[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, noteName)
	}

	if len(name) == 2 {
		switch name[1] {
		case '#':
			offset++
		case 'b':
			offset--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNote, noteName)
		}
	}

	return PitchClass(offset).normalize(), nil
}

// NormalizeNoteName returns the canonical sharp spelling of a note name
func NormalizeNoteName(noteName string) (string, error) {
	pc, err := PitchClassOf(noteName)
	if err != nil {
		return "", err
	}
	return pc.String(), nil
}

// NoteNames spells a list of pitch classes with sharps
func NoteNames(pcs []PitchClass) []string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = pc.String()
	}
	return names
}
