package caged

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

// Shape is one of the five CAGED letter shapes
type Shape string

const (
	ShapeC Shape = "C"
	ShapeA Shape = "A"
	ShapeG Shape = "G"
	ShapeE Shape = "E"
	ShapeD Shape = "D"
)

// AllShapes lists the shapes in CAGED order
var AllShapes = []Shape{ShapeC, ShapeA, ShapeG, ShapeE, ShapeD}

// ParseShape accepts a shape letter in either case
func ParseShape(s string) (Shape, error) {
	shape := Shape(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllShapes {
		if shape == known {
			return shape, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

func (s Shape) order() int {
	for i, known := range AllShapes {
		if s == known {
			return i
		}
	}
	return len(AllShapes)
}

// Frets holds one fret value per string, low E first. -1 is muted, 0 is open.
type Frets [theory.NumStrings]int

// Template is the open-position form of a shape for one quality
type Template struct {
	Shape   Shape
	Quality string
	Frets   Frets
	// RootString carries the shape's defining root tone
	RootString int
	// RootFret is the root tone's fret on RootString in this base form
	RootFret int
}

type templateKey struct {
	shape   Shape
	quality string
}

var templates = map[templateKey]Template{
	{ShapeC, theory.QualityMajor}: {Shape: ShapeC, Quality: theory.QualityMajor, Frets: Frets{-1, 3, 2, 0, 1, 0}, RootString: 1, RootFret: 3},
	{ShapeA, theory.QualityMajor}: {Shape: ShapeA, Quality: theory.QualityMajor, Frets: Frets{-1, 0, 2, 2, 2, 0}, RootString: 1, RootFret: 0},
	{ShapeG, theory.QualityMajor}: {Shape: ShapeG, Quality: theory.QualityMajor, Frets: Frets{3, 2, 0, 0, 0, 3}, RootString: 0, RootFret: 3},
	{ShapeE, theory.QualityMajor}: {Shape: ShapeE, Quality: theory.QualityMajor, Frets: Frets{0, 2, 2, 1, 0, 0}, RootString: 0, RootFret: 0},
	{ShapeD, theory.QualityMajor}: {Shape: ShapeD, Quality: theory.QualityMajor, Frets: Frets{-1, -1, 0, 2, 3, 2}, RootString: 2, RootFret: 0},

	{ShapeC, theory.QualityMinor}: {Shape: ShapeC, Quality: theory.QualityMinor, Frets: Frets{-1, 3, 1, 0, 1, -1}, RootString: 1, RootFret: 3},
	{ShapeA, theory.QualityMinor}: {Shape: ShapeA, Quality: theory.QualityMinor, Frets: Frets{-1, 0, 2, 2, 1, 0}, RootString: 1, RootFret: 0},
	{ShapeG, theory.QualityMinor}: {Shape: ShapeG, Quality: theory.QualityMinor, Frets: Frets{3, 1, 0, 0, 3, 3}, RootString: 0, RootFret: 3},
	{ShapeE, theory.QualityMinor}: {Shape: ShapeE, Quality: theory.QualityMinor, Frets: Frets{0, 2, 2, 0, 0, 0}, RootString: 0, RootFret: 0},
	{ShapeD, theory.QualityMinor}: {Shape: ShapeD, Quality: theory.QualityMinor, Frets: Frets{-1, -1, 0, 2, 3, 1}, RootString: 2, RootFret: 0},
}

// TemplateQuality reduces a quality to the template family that covers it.
// Only major and minor have templates.
func TemplateQuality(quality string) (string, bool) {
	switch q := theory.NormalizeQuality(quality); q {
	case theory.QualityMajor, theory.QualityMinor:
		return q, true
	default:
		return q, false
	}
}

// LookupTemplate returns the template for a shape and base quality
func LookupTemplate(shape Shape, quality string) (Template, error) {
	q, ok := TemplateQuality(quality)
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnsupportedQuality, quality)
	}
	tmpl, ok := templates[templateKey{shape, q}]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	return tmpl, nil
}

// Templates returns every template, CAGED order, major before minor
func Templates() []Template {
	out := make([]Template, 0, len(templates))
	for _, q := range []string{theory.QualityMajor, theory.QualityMinor} {
		for _, shape := range AllShapes {
			out = append(out, templates[templateKey{shape, q}])
		}
	}
	return out
}
