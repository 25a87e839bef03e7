package caged

import (
	"testing"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/stretchr/testify/assert"
)

func TestBaseFret(t *testing.T) {
	assert.Equal(t, 1, BaseFret(Frets{-1, 3, 2, 0, 1, 0}))
	assert.Equal(t, 3, BaseFret(Frets{-1, 3, 5, 5, 5, 3}))
	assert.Equal(t, 7, BaseFret(Frets{-1, -1, 7, 9, 10, 9}))
	assert.Equal(t, 1, BaseFret(Frets{-1, -1, -1, -1, -1, -1}))
}

func TestAbsoluteAndRelativeFrets(t *testing.T) {
	relative := Frets{-1, 1, 3, 3, 3, 1}
	absolute := AbsoluteFrets(relative, 3)
	assert.Equal(t, Frets{-1, 3, 5, 5, 5, 3}, absolute)

	v := Voicing{Frets: absolute, BaseFret: BaseFret(absolute)}
	assert.Equal(t, relative, v.RelativeFrets())

	open := Frets{-1, 3, 2, 0, 1, 0}
	assert.Equal(t, open, AbsoluteFrets(open, 1))
	assert.Equal(t, open, AbsoluteFrets(open, 0))
}

func TestDetectBarres(t *testing.T) {
	tests := []struct {
		name     string
		frets    Frets
		expected []int
	}{
		{name: "F barre", frets: Frets{1, 3, 3, 2, 1, 1}, expected: []int{1, 3}},
		{name: "A shape with ring finger barre", frets: Frets{-1, 3, 5, 5, 5, 3}, expected: []int{3, 5}},
		{name: "E shape at G", frets: Frets{3, 5, 5, 4, 3, 3}, expected: []int{3, 5}},
		{name: "open G shares fret 3 across the outer strings", frets: Frets{3, 2, 0, 0, 0, 3}, expected: []int{3}},
		{name: "open A minor", frets: Frets{-1, 0, 2, 2, 1, 0}, expected: []int{2}},
		{name: "D shape up the neck", frets: Frets{-1, -1, 7, 9, 10, 9}, expected: []int{9}},
		{name: "open strings are not a barre", frets: Frets{0, 2, 0, 1, 0, 0}, expected: nil},
		{name: "open C", frets: Frets{-1, 3, 2, 0, 1, 0}, expected: nil},
		{name: "all muted", frets: Frets{-1, -1, -1, -1, -1, -1}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectBarres(tt.frets))
		})
	}
}

func TestClassifyDifficulty(t *testing.T) {
	grade := func(frets Frets) Difficulty {
		return ClassifyDifficulty(frets, BaseFret(frets), DetectBarres(frets))
	}

	assert.Equal(t, DifficultyBeginner, grade(Frets{-1, 3, 2, 0, 1, 0}))
	assert.Equal(t, DifficultyBeginner, grade(Frets{0, 2, 0, 1, 0, 0}))
	assert.Equal(t, DifficultyIntermediate, grade(Frets{-1, -1, 0, 2, 3, 2}))
	assert.Equal(t, DifficultyIntermediate, grade(Frets{-1, -1, 7, 9, 10, 9}))
	assert.Equal(t, DifficultyAdvanced, grade(Frets{1, 3, 3, 2, 1, 1}))
	assert.Equal(t, DifficultyAdvanced, grade(Frets{-1, 3, 5, 5, 5, 3}))
	assert.Equal(t, DifficultyAdvanced, grade(Frets{-1, -1, 14, 16, 17, 16}))
}

func TestBuildVoicing_EShapeAtGHasTwoBarres(t *testing.T) {
	tones := theory.IntervalOracle{}.ChordTones(7, theory.QualityMajor)
	v := buildVoicing(theory.StandardTuning, 7, theory.QualityMajor, tones, ShapeE, SourceTemplate, Frets{3, 5, 5, 4, 3, 3})

	assert.Equal(t, []int{3, 5}, v.Barres)
	assert.Equal(t, DifficultyAdvanced, v.Difficulty)
	assert.Equal(t, 3, v.BaseFret)
}

func TestFretsTab(t *testing.T) {
	expected := "e|---0--|\n" +
		"B|---1--|\n" +
		"G|---0--|\n" +
		"D|---2--|\n" +
		"A|---3--|\n" +
		"E|---x--|\n"
	assert.Equal(t, expected, Frets{-1, 3, 2, 0, 1, 0}.Tab())

	assert.Contains(t, Frets{-1, 12, 10, 9, 10, -1}.Tab(), "A|--12--|")
}

func TestFretsHelpers(t *testing.T) {
	f := Frets{-1, 3, 2, 0, 1, 0}
	assert.Equal(t, 5, f.Played())
	assert.True(t, f.HasOpen())
	assert.True(t, f.Valid())
	assert.False(t, Frets{-2, 0, 0, 0, 0, 0}.Valid())
	assert.False(t, Frets{25, 0, 0, 0, 0, 0}.Valid())
}
