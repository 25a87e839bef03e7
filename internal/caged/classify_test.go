package caged

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name     string
		frets    Frets
		baseFret int
		expected Shape
	}{
		{name: "open D major", frets: Frets{-1, -1, 0, 2, 3, 2}, baseFret: 1, expected: ShapeD},
		{name: "open C major", frets: Frets{-1, 3, 2, 0, 1, 0}, baseFret: 1, expected: ShapeC},
		{name: "open A major", frets: Frets{-1, 0, 2, 2, 2, 0}, baseFret: 1, expected: ShapeA},
		{name: "open A minor", frets: Frets{-1, 0, 2, 2, 1, 0}, baseFret: 1, expected: ShapeA},
		{name: "open G major", frets: Frets{3, 2, 0, 0, 0, 3}, baseFret: 1, expected: ShapeG},
		{name: "open E major", frets: Frets{0, 2, 2, 1, 0, 0}, baseFret: 1, expected: ShapeE},
		{name: "open E minor", frets: Frets{0, 2, 2, 0, 0, 0}, baseFret: 1, expected: ShapeE},
		{name: "F barre", frets: Frets{1, 3, 3, 2, 1, 1}, baseFret: 1, expected: ShapeE},
		{name: "relative A shape barre at 3", frets: Frets{-1, 1, 3, 3, 3, 1}, baseFret: 3, expected: ShapeA},
		{name: "relative E shape barre at 5", frets: Frets{1, 3, 3, 1, 1, 1}, baseFret: 5, expected: ShapeE},
		{name: "D shape up the neck", frets: Frets{-1, -1, 7, 9, 10, 9}, baseFret: 1, expected: ShapeD},
		{name: "top string triad falls back to D", frets: Frets{-1, -1, -1, 2, 3, 2}, baseFret: 1, expected: ShapeD},
		{name: "single low E", frets: Frets{0, -1, -1, -1, -1, -1}, baseFret: 1, expected: ShapeE},
		{name: "all muted defaults to E", frets: Frets{-1, -1, -1, -1, -1, -1}, baseFret: 1, expected: ShapeE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyShape(tt.frets, tt.baseFret))
		})
	}
}

// The classifier reads structure, not position: two known overlaps are kept
// as they are rather than guessed at.
func TestClassifyShape_DocumentedAmbiguity(t *testing.T) {
	t.Run("C shape moved up loses its open strings and reads as A", func(t *testing.T) {
		result, err := Transpose("D", ShapeC, "major", true)
		require.NoError(t, err)
		assert.Equal(t, Frets{-1, 5, 4, 2, 3, 2}, result.Frets)
		assert.Equal(t, ShapeA, ClassifyShape(result.Frets, 1))
	})

	t.Run("A-string bass with muted D string reads as C", func(t *testing.T) {
		assert.Equal(t, ShapeC, ClassifyShape(Frets{-1, 3, -1, 0, 1, 0}, 1))
		assert.Equal(t, ShapeC, ClassifyShape(Frets{-1, 0, -1, 2, 2, 0}, 1))
	})

	t.Run("G chord with open high e reads as E", func(t *testing.T) {
		assert.Equal(t, ShapeE, ClassifyShape(Frets{3, 2, 0, 0, 0, 0}, 1))
	})

	t.Run("G shape moved up has no open strings and reads as E", func(t *testing.T) {
		result, err := Transpose("A", ShapeG, "major", true)
		require.NoError(t, err)
		assert.Equal(t, ShapeE, ClassifyShape(result.Frets, 1))
	})
}

func TestClassifyShape_RoundTripAtNativeRoot(t *testing.T) {
	native := map[Shape]string{ShapeC: "C", ShapeA: "A", ShapeG: "G", ShapeE: "E", ShapeD: "D"}

	for _, quality := range []string{"major", "minor"} {
		for _, shape := range AllShapes {
			result, err := Transpose(native[shape], shape, quality, true)
			require.NoError(t, err)
			assert.Equal(t, 0, result.Offset)
			assert.Equal(t, shape, ClassifyShape(result.Frets, result.BaseFret()), "%s %s", shape, quality)
		}
	}
}

func TestParseShape(t *testing.T) {
	shape, err := ParseShape("g")
	require.NoError(t, err)
	assert.Equal(t, ShapeG, shape)

	_, err = ParseShape("F")
	assert.ErrorIs(t, err, ErrUnknownShape)
}
