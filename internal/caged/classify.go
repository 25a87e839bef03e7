package caged

import "github.com/Conceptual-Machines/caged-api/internal/theory"

// String indexes used by the classifier
const (
	stringLowE  = 0
	stringA     = 1
	stringD     = 2
	stringHighE = 5

	minEShapeStrings = 4
	minGShapeStrings = 5
)

// ClassifyShape names the CAGED shape a fret pattern is built on. Frets are
// relative to baseFret when baseFret > 1. The decision looks at which strings
// carry the bass and how the voicing is spread, never at the fret position.
//
// C/A and E/G overlap for some voicings; the first matching rule wins.
func ClassifyShape(frets Frets, baseFret int) Shape {
	abs := AbsoluteFrets(frets, baseFret)

	played := func(s int) bool { return abs[s] >= theory.OpenFret }
	lowest, highest := -1, -1
	for s := range abs {
		if played(s) {
			if lowest < 0 {
				lowest = s
			}
			highest = s
		}
	}
	count := abs.Played()
	hasOpen := abs.HasOpen()

	switch {
	case !played(stringLowE) && !played(stringA) && played(stringD):
		return ShapeD

	case lowest == stringLowE && count >= minEShapeStrings:
		if count == theory.NumStrings && hasOpen && abs[stringHighE] > theory.OpenFret {
			return ShapeG
		}
		return ShapeE

	case lowest == stringA:
		// A muted D string (-1) counts as lower than the A string
		if !played(stringLowE) && hasOpen && abs[stringD] < abs[stringA] {
			return ShapeC
		}
		return ShapeA

	case count >= minGShapeStrings && lowest == stringLowE && highest == stringHighE:
		return ShapeG

	case !played(stringLowE) && played(stringA):
		if hasOpen {
			return ShapeC
		}
		return ShapeA
	}

	switch {
	case lowest < 0, lowest == stringLowE:
		return ShapeE
	case lowest == stringA:
		return ShapeA
	default:
		return ShapeD
	}
}
