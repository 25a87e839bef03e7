package theory

import (
	"errors"
	"fmt"
	"strings"
)

// Chord quality tags understood by the interval oracle
const (
	QualityMajor      = "major"
	QualityMinor      = "minor"
	QualityDominant7  = "7"
	QualityMajor7     = "maj7"
	QualityMinor7     = "m7"
	QualityMajor6     = "6"
	QualityMinor6     = "m6"
	QualitySus2       = "sus2"
	QualitySus4       = "sus4"
	QualityDiminished = "dim"
	QualityDim7       = "dim7"
	QualityHalfDim    = "m7b5"
	QualityAugmented  = "aug"
	QualityAdd9       = "add9"
	QualityDominant9  = "9"
)

// ErrUnknownQuality is returned by ParseChordSymbol when the suffix is not a known quality
var ErrUnknownQuality = errors.New("unknown chord quality")

// ChordToneOracle supplies the pitch classes of a chord. An empty result means
// the chord is unknown.
type ChordToneOracle interface {
	ChordTones(root PitchClass, quality string) []PitchClass
}

// OracleFunc adapts a plain function to ChordToneOracle
type OracleFunc func(root PitchClass, quality string) []PitchClass

// ChordTones calls f
func (f OracleFunc) ChordTones(root PitchClass, quality string) []PitchClass {
	return f(root, quality)
}

// Semitones from the root, per quality
var qualityIntervals = map[string][]int{
	QualityMajor:      {0, 4, 7},
	QualityMinor:      {0, 3, 7},
	QualityDominant7:  {0, 4, 7, 10},
	QualityMajor7:     {0, 4, 7, 11},
	QualityMinor7:     {0, 3, 7, 10},
	QualityMajor6:     {0, 4, 7, 9},
	QualityMinor6:     {0, 3, 7, 9},
	QualitySus2:       {0, 2, 7},
	QualitySus4:       {0, 5, 7},
	QualityDiminished: {0, 3, 6},
	QualityDim7:       {0, 3, 6, 9},
	QualityHalfDim:    {0, 3, 6, 10},
	QualityAugmented:  {0, 4, 8},
	QualityAdd9:       {0, 4, 7, 2},
	QualityDominant9:  {0, 4, 7, 10, 2},
}

// Spellings accepted for each quality tag. Keys are matched case sensitively
// first so that "M7" and "m7" stay distinct.
var qualityAliases = map[string]string{
	"":      QualityMajor,
	"M":     QualityMajor,
	"maj":   QualityMajor,
	"major": QualityMajor,
	"m":     QualityMinor,
	"min":   QualityMinor,
	"minor": QualityMinor,
	"-":     QualityMinor,
	"7":     QualityDominant7,
	"dom7":  QualityDominant7,
	"maj7":  QualityMajor7,
	"M7":    QualityMajor7,
	"Δ7":    QualityMajor7,
	"Δ":     QualityMajor7,
	"m7":    QualityMinor7,
	"min7":  QualityMinor7,
	"-7":    QualityMinor7,
	"6":     QualityMajor6,
	"m6":    QualityMinor6,
	"min6":  QualityMinor6,
	"sus2":  QualitySus2,
	"sus4":  QualitySus4,
	"sus":   QualitySus4,
	"dim":   QualityDiminished,
	"°":     QualityDiminished,
	"o":     QualityDiminished,
	"dim7":  QualityDim7,
	"°7":    QualityDim7,
	"o7":    QualityDim7,
	"m7b5":  QualityHalfDim,
	"ø":     QualityHalfDim,
	"ø7":    QualityHalfDim,
	"aug":   QualityAugmented,
	"+":     QualityAugmented,
	"add9":  QualityAdd9,
	"9":     QualityDominant9,
}

// NormalizeQuality maps a quality spelling to its canonical tag. Unrecognized
// spellings are returned trimmed so the oracle reports them as unknown.
func NormalizeQuality(quality string) string {
	q := strings.TrimSpace(quality)
	if canonical, ok := qualityAliases[q]; ok {
		return canonical
	}
	if canonical, ok := qualityAliases[strings.ToLower(q)]; ok {
		return canonical
	}
	return q
}

// KnownQuality reports whether the oracle has intervals for the quality
func KnownQuality(quality string) bool {
	_, ok := qualityIntervals[NormalizeQuality(quality)]
	return ok
}

// Qualities lists the canonical quality tags
func Qualities() []string {
	return []string{
		QualityMajor, QualityMinor, QualityDominant7, QualityMajor7, QualityMinor7,
		QualityMajor6, QualityMinor6, QualitySus2, QualitySus4, QualityDiminished,
		QualityDim7, QualityHalfDim, QualityAugmented, QualityAdd9, QualityDominant9,
	}
}

// IntervalOracle builds chord tones from a fixed interval table
type IntervalOracle struct{}

// ChordTones returns the chord's pitch classes ordered by interval from the root
func (IntervalOracle) ChordTones(root PitchClass, quality string) []PitchClass {
	intervals, ok := qualityIntervals[NormalizeQuality(quality)]
	if !ok {
		return nil
	}
	tones := make([]PitchClass, len(intervals))
	for i, interval := range intervals {
		tones[i] = root.Transpose(interval)
	}
	return tones
}

// ParseChordSymbol splits a symbol like "Ebm7" or "C/G" into its canonical
// root name and quality tag. A slash bass note is validated and dropped.
func ParseChordSymbol(symbol string) (root string, quality string, err error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return "", "", fmt.Errorf("%w: empty chord symbol", ErrInvalidNote)
	}

	if idx := strings.Index(s, "/"); idx >= 0 {
		if _, err := PitchClassOf(s[idx+1:]); err != nil {
			return "", "", fmt.Errorf("invalid bass note: %w", err)
		}
		s = s[:idx]
	}

	rootLen := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		rootLen = 2
	} else if strings.HasPrefix(s[1:], "♯") || strings.HasPrefix(s[1:], "♭") {
		rootLen = 1 + len("♯")
	}

	pc, err := PitchClassOf(s[:rootLen])
	if err != nil {
		return "", "", err
	}

	quality = NormalizeQuality(s[rootLen:])
	if !KnownQuality(quality) {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownQuality, s[rootLen:])
	}
	return pc.String(), quality, nil
}
