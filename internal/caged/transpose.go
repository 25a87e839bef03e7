package caged

import (
	"fmt"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

// Transposition is the result of moving a template to a new root
type Transposition struct {
	Shape       Shape
	Quality     string
	Root        theory.PitchClass
	Offset      int
	Frets       Frets
	Corrections []Correction
}

// BaseFret of the transposed pattern
func (t *Transposition) BaseFret() int {
	return BaseFret(t.Frets)
}

// Transposer moves shape templates up the neck and checks the result against
// the chord tones from an oracle
type Transposer struct {
	tuning theory.Tuning
	oracle theory.ChordToneOracle
}

// NewTransposer creates a transposer over standard tuning
func NewTransposer(oracle theory.ChordToneOracle) *Transposer {
	if oracle == nil {
		oracle = theory.IntervalOracle{}
	}
	return &Transposer{
		tuning: theory.StandardTuning,
		oracle: oracle,
	}
}

var defaultTransposer = NewTransposer(theory.IntervalOracle{})

// Transpose moves a shape to root using the interval oracle
func Transpose(root string, shape Shape, quality string, validate bool) (*Transposition, error) {
	return defaultTransposer.Transpose(root, shape, quality, validate)
}

// Transpose moves the (shape, quality) template so that its root tone lands on
// root. With validate set, strings that do not sound a chord tone are muted and
// reported as corrections. A transposition that would need a fret below the nut
// fails with ErrUntransposableShape.
func (t *Transposer) Transpose(root string, shape Shape, quality string, validate bool) (*Transposition, error) {
	pc, err := theory.PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	tmpl, err := LookupTemplate(shape, quality)
	if err != nil {
		return nil, err
	}
	return t.transposeTemplate(pc, tmpl, 0, validate)
}

// transposeTemplate shifts tmpl so its root lands on pc, raised by the given
// number of octaves
func (t *Transposer) transposeTemplate(pc theory.PitchClass, tmpl Template, octaves int, validate bool) (*Transposition, error) {
	targetRootFret, err := t.tuning.FindFretForPitchClass(pc, tmpl.RootString)
	if err != nil {
		return nil, err
	}
	offset := targetRootFret - tmpl.RootFret + octaves*theory.NumPitchClasses

	var frets Frets
	for s, fret := range tmpl.Frets {
		if fret == theory.MutedFret {
			frets[s] = theory.MutedFret
			continue
		}
		moved := fret + offset
		if moved < theory.OpenFret || moved > theory.MaxFret {
			return nil, fmt.Errorf("%w: %s shape to %s needs fret %d on string %d",
				ErrUntransposableShape, tmpl.Shape, pc, moved, s)
		}
		frets[s] = moved
	}

	result := &Transposition{
		Shape:   tmpl.Shape,
		Quality: tmpl.Quality,
		Root:    pc,
		Offset:  offset,
		Frets:   frets,
	}
	if !validate {
		return result, nil
	}

	tones := t.oracle.ChordTones(pc, tmpl.Quality)
	if len(tones) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownChord, pc, tmpl.Quality)
	}
	result.Frets, result.Corrections = muteForeignNotes(t.tuning, frets, tones, pc.String()+" "+tmpl.Quality)
	return result, nil
}
