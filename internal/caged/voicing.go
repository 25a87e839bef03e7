package caged

import (
	"sort"

	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

// Difficulty grades how hard a voicing is to finger
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Source records where a voicing came from
type Source string

const (
	SourceLibrary  Source = "library"
	SourceTemplate Source = "template"
)

// Correction reasons
const (
	ReasonForeignNote  = "foreign_note"
	ReasonOffFretboard = "off_fretboard"
)

const (
	advancedBaseFret = 12
	minBarreStrings  = 2
	perfectFifth     = 7
)

// Correction records a string that validation forced to muted
type Correction struct {
	String       int               `json:"string"`
	OriginalFret int               `json:"original_fret"`
	PitchClass   theory.PitchClass `json:"pitch_class"`
	Reason       string            `json:"reason"`
}

// Voicing is one playable fingering of a chord. Frets are absolute.
type Voicing struct {
	Shape        Shape
	ClassifiedAs Shape
	Root         theory.PitchClass
	Quality      string
	Frets        Frets
	BaseFret     int
	Barres       []int
	Difficulty   Difficulty
	Valid        bool
	Complete     bool
	Source       Source
	ChordTones   []theory.PitchClass
	Sounding     []theory.PitchClass
	Corrections  []Correction
}

// RelativeFrets expresses fretted strings relative to BaseFret, so that the
// lowest fretted string sits on fret 1. Open and muted strings pass through.
func (v Voicing) RelativeFrets() Frets {
	return relativeFrets(v.Frets, v.BaseFret)
}

// Played counts the strings that sound
func (f Frets) Played() int {
	n := 0
	for _, fret := range f {
		if fret >= theory.OpenFret {
			n++
		}
	}
	return n
}

// HasOpen reports whether any string rings open
func (f Frets) HasOpen() bool {
	for _, fret := range f {
		if fret == theory.OpenFret {
			return true
		}
	}
	return false
}

// Valid reports whether every value is muted, open or on the fretboard
func (f Frets) Valid() bool {
	for _, fret := range f {
		if !theory.ValidFret(fret) {
			return false
		}
	}
	return true
}

// BaseFret is 1 for open-position voicings and otherwise the lowest fretted position
func BaseFret(frets Frets) int {
	if frets.HasOpen() {
		return 1
	}
	lowest := 0
	for _, fret := range frets {
		if fret > 0 && (lowest == 0 || fret < lowest) {
			lowest = fret
		}
	}
	if lowest == 0 {
		return 1
	}
	return lowest
}

// AbsoluteFrets converts a baseFret-relative pattern to absolute frets
func AbsoluteFrets(frets Frets, baseFret int) Frets {
	if baseFret <= 1 {
		return frets
	}
	out := frets
	for i, fret := range out {
		if fret > 0 {
			out[i] = fret + baseFret - 1
		}
	}
	return out
}

func relativeFrets(frets Frets, baseFret int) Frets {
	if baseFret <= 1 {
		return frets
	}
	out := frets
	for i, fret := range out {
		if fret > 0 {
			out[i] = fret - baseFret + 1
		}
	}
	return out
}

// DetectBarres returns, in ascending order, every fretted position shared by
// at least two strings. Open and muted strings never form a barre.
func DetectBarres(frets Frets) []int {
	counts := map[int]int{}
	for _, fret := range frets {
		if fret > theory.OpenFret {
			counts[fret]++
		}
	}

	var barres []int
	for fret, n := range counts {
		if n >= minBarreStrings {
			barres = append(barres, fret)
		}
	}
	sort.Ints(barres)
	return barres
}

// ClassifyDifficulty grades a voicing from its base fret, open strings and barres
func ClassifyDifficulty(frets Frets, baseFret int, barres []int) Difficulty {
	if baseFret > advancedBaseFret || len(barres) > 1 {
		return DifficultyAdvanced
	}
	if frets.HasOpen() && len(barres) == 0 {
		return DifficultyBeginner
	}
	return DifficultyIntermediate
}

// muteForeignNotes mutes every string whose sounding note is not a chord tone
func muteForeignNotes(tuning theory.Tuning, frets Frets, tones []theory.PitchClass, chord string) (Frets, []Correction) {
	var corrections []Correction
	for s, fret := range frets {
		if fret == theory.MutedFret {
			continue
		}
		pc, err := tuning.FretPitchClass(s, fret)
		if err != nil {
			frets[s] = theory.MutedFret
			corrections = append(corrections, Correction{String: s, OriginalFret: fret, Reason: ReasonOffFretboard})
			logger.Warn("Muted string off the fretboard", logger.Fields{
				"chord": chord, "string": s, "fret": fret,
			})
			continue
		}
		if containsPitch(tones, pc) {
			continue
		}
		frets[s] = theory.MutedFret
		corrections = append(corrections, Correction{String: s, OriginalFret: fret, PitchClass: pc, Reason: ReasonForeignNote})
		logger.Debug("Muted foreign note", logger.Fields{
			"chord": chord, "string": s, "fret": fret, "note": pc.String(),
		})
	}
	return frets, corrections
}

// soundingPitches lists distinct sounding pitch classes from the low string up
func soundingPitches(tuning theory.Tuning, frets Frets) []theory.PitchClass {
	var out []theory.PitchClass
	for s, fret := range frets {
		pc, err := tuning.FretPitchClass(s, fret)
		if err != nil {
			continue
		}
		if !containsPitch(out, pc) {
			out = append(out, pc)
		}
	}
	return out
}

// essentialTones drops the perfect fifth, the one tone a voicing may omit
func essentialTones(root theory.PitchClass, tones []theory.PitchClass) []theory.PitchClass {
	fifth := root.Transpose(perfectFifth)
	out := make([]theory.PitchClass, 0, len(tones))
	for _, pc := range tones {
		if pc == fifth && len(tones) > 2 {
			continue
		}
		out = append(out, pc)
	}
	return out
}

func containsPitch(pcs []theory.PitchClass, pc theory.PitchClass) bool {
	for _, p := range pcs {
		if p == pc {
			return true
		}
	}
	return false
}

func containsAll(have, want []theory.PitchClass) bool {
	for _, pc := range want {
		if !containsPitch(have, pc) {
			return false
		}
	}
	return true
}

// buildVoicing validates frets against the chord tones and derives the
// remaining voicing attributes
func buildVoicing(tuning theory.Tuning, root theory.PitchClass, quality string, tones []theory.PitchClass,
	shape Shape, source Source, frets Frets) Voicing {
	chord := root.String() + " " + quality
	corrected, corrections := muteForeignNotes(tuning, frets, tones, chord)

	sounding := soundingPitches(tuning, corrected)
	baseFret := BaseFret(corrected)
	barres := DetectBarres(corrected)

	return Voicing{
		Shape:        shape,
		ClassifiedAs: ClassifyShape(corrected, 1),
		Root:         root,
		Quality:      quality,
		Frets:        corrected,
		BaseFret:     baseFret,
		Barres:       barres,
		Difficulty:   ClassifyDifficulty(corrected, baseFret, barres),
		Valid:        corrected.Played() > 0 && containsAll(sounding, essentialTones(root, tones)),
		Complete:     containsAll(sounding, tones),
		Source:       source,
		ChordTones:   tones,
		Sounding:     sounding,
		Corrections:  corrections,
	}
}
