package caged

import (
	"errors"
	"sort"

	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

// Default playable window and result size
const (
	DefaultMaxCount = 5
	DefaultMinFret  = 0
	DefaultMaxFret  = 15
)

// RawVoicing is a curated fingering as stored in a voicing library. Frets are
// relative to BaseFret when BaseFret > 1.
type RawVoicing struct {
	Frets    Frets
	BaseFret int
	Barres   []int
}

// VoicingLibrary looks up curated voicings for a chord. An empty result means
// nothing is curated for it.
type VoicingLibrary interface {
	Lookup(root theory.PitchClass, quality string) []RawVoicing
}

// VoicingProvider is implemented by Assembler and CachedAssembler
type VoicingProvider interface {
	GetVoicings(root, quality string, opts Options) ([]Voicing, error)
}

// Options control which voicings GetVoicings returns
type Options struct {
	// MaxCount truncates the result; zero or less means no limit
	MaxCount int
	// MinFret and MaxFret bound the base fret of every voicing
	MinFret int
	MaxFret int
	// OnlyValidated drops voicings that fail chord-tone validation
	OnlyValidated bool
}

// DefaultOptions returns five voicings within frets 0-15
func DefaultOptions() Options {
	return Options{
		MaxCount: DefaultMaxCount,
		MinFret:  DefaultMinFret,
		MaxFret:  DefaultMaxFret,
	}
}

// withDefaults fills an unset fret window; a base fret is never below 1 so
// MaxFret 0 cannot select anything
func (o Options) withDefaults() Options {
	if o.MaxFret <= 0 {
		o.MaxFret = DefaultMaxFret
	}
	if o.MinFret < 0 {
		o.MinFret = DefaultMinFret
	}
	return o
}

func (o Options) inRange(v Voicing) bool {
	return v.BaseFret >= o.MinFret && v.BaseFret <= o.MaxFret
}

// Assembler combines curated library voicings with transposed templates
type Assembler struct {
	tuning     theory.Tuning
	oracle     theory.ChordToneOracle
	library    VoicingLibrary
	transposer *Transposer
}

// NewAssembler wires the oracle and the fallback library. A nil oracle uses the
// interval table; a nil library means nothing is curated.
func NewAssembler(oracle theory.ChordToneOracle, library VoicingLibrary) *Assembler {
	if oracle == nil {
		oracle = theory.IntervalOracle{}
	}
	return &Assembler{
		tuning:     theory.StandardTuning,
		oracle:     oracle,
		library:    library,
		transposer: NewTransposer(oracle),
	}
}

// GetVoicings returns up to opts.MaxCount voicings of the chord, one per shape,
// sorted by base fret. An unknown chord yields an empty result and no error;
// an unparseable root yields theory.ErrInvalidNote.
func (a *Assembler) GetVoicings(root, quality string, opts Options) ([]Voicing, error) {
	pc, err := theory.PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	q := theory.NormalizeQuality(quality)
	opts = opts.withDefaults()

	tones := a.oracle.ChordTones(pc, q)
	if len(tones) == 0 {
		logger.Info("No chord tones for chord", logger.Fields{"root": pc.String(), "quality": q})
		return []Voicing{}, nil
	}

	voicings := a.libraryVoicings(pc, q, tones, opts)

	if _, ok := TemplateQuality(q); ok {
		have := map[Shape]bool{}
		for _, v := range voicings {
			have[v.Shape] = true
		}
		for _, shape := range AllShapes {
			if have[shape] {
				continue
			}
			v, ok := a.templateVoicing(pc, q, tones, shape, opts)
			if ok {
				voicings = append(voicings, v)
			}
		}
	}

	sort.SliceStable(voicings, func(i, j int) bool {
		if voicings[i].BaseFret != voicings[j].BaseFret {
			return voicings[i].BaseFret < voicings[j].BaseFret
		}
		return voicings[i].Shape.order() < voicings[j].Shape.order()
	})

	if opts.MaxCount > 0 && len(voicings) > opts.MaxCount {
		voicings = voicings[:opts.MaxCount]
	}
	return voicings, nil
}

// libraryVoicings classifies curated voicings and keeps the lowest per shape
func (a *Assembler) libraryVoicings(pc theory.PitchClass, quality string, tones []theory.PitchClass, opts Options) []Voicing {
	if a.library == nil {
		return nil
	}

	byShape := map[Shape]Voicing{}
	for _, raw := range a.library.Lookup(pc, quality) {
		abs := AbsoluteFrets(raw.Frets, raw.BaseFret)
		if !abs.Valid() {
			logger.Warn("Skipping curated voicing with invalid frets", logger.Fields{
				"root": pc.String(), "quality": quality, "frets": raw.Frets, "base_fret": raw.BaseFret,
			})
			continue
		}

		shape := ClassifyShape(raw.Frets, raw.BaseFret)
		v := buildVoicing(a.tuning, pc, quality, tones, shape, SourceLibrary, abs)
		if len(raw.Barres) > 0 && len(v.Corrections) == 0 {
			v.Barres = AbsoluteBarres(raw.Barres, raw.BaseFret)
			v.Difficulty = ClassifyDifficulty(v.Frets, v.BaseFret, v.Barres)
		}
		if !a.keep(v, opts) {
			continue
		}
		if prev, ok := byShape[shape]; !ok || v.BaseFret < prev.BaseFret {
			byShape[shape] = v
		}
	}

	out := make([]Voicing, 0, len(byShape))
	for _, shape := range AllShapes {
		if v, ok := byShape[shape]; ok {
			out = append(out, v)
		}
	}
	return out
}

// templateVoicing transposes the shape to the root, one octave higher when the
// template's native root sits above the target root fret
func (a *Assembler) templateVoicing(pc theory.PitchClass, quality string, tones []theory.PitchClass, shape Shape, opts Options) (Voicing, bool) {
	tmpl, err := LookupTemplate(shape, quality)
	if err != nil {
		return Voicing{}, false
	}

	var v Voicing
	found := false
	for octaves := 0; octaves <= 1; octaves++ {
		t, err := a.transposer.transposeTemplate(pc, tmpl, octaves, false)
		if errors.Is(err, ErrUntransposableShape) {
			continue
		}
		if err != nil {
			logger.Warn("Transposition failed", logger.Fields{
				"root": pc.String(), "quality": quality, "shape": string(shape), "error": err.Error(),
			})
			return Voicing{}, false
		}
		v = buildVoicing(a.tuning, pc, quality, tones, shape, SourceTemplate, t.Frets)
		found = true
		break
	}

	if !found {
		logger.Debug("Shape unavailable at root", logger.Fields{
			"root": pc.String(), "quality": quality, "shape": string(shape),
		})
		return Voicing{}, false
	}
	if !a.keep(v, opts) {
		logger.Debug("Shape outside playable range", logger.Fields{
			"root": pc.String(), "quality": quality, "shape": string(shape), "base_fret": v.BaseFret,
		})
		return Voicing{}, false
	}
	return v, true
}

func (a *Assembler) keep(v Voicing, opts Options) bool {
	if !opts.inRange(v) {
		return false
	}
	if opts.OnlyValidated && !v.Valid {
		return false
	}
	return true
}

// AbsoluteBarres converts baseFret-relative barre positions to absolute frets
func AbsoluteBarres(barres []int, baseFret int) []int {
	out := make([]int, len(barres))
	for i, fret := range barres {
		if baseFret > 1 {
			fret += baseFret - 1
		}
		out[i] = fret
	}
	return out
}
