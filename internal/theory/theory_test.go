package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClassOf(t *testing.T) {
	tests := []struct {
		name     string
		note     string
		expected PitchClass
	}{
		{name: "natural C", note: "C", expected: 0},
		{name: "sharp", note: "F#", expected: 6},
		{name: "flat normalized", note: "Bb", expected: 10},
		{name: "Db equals C#", note: "Db", expected: 1},
		{name: "lowercase letter", note: "a", expected: 9},
		{name: "lowercase flat", note: "eb", expected: 3},
		{name: "unicode flat", note: "A♭", expected: 8},
		{name: "unicode sharp", note: "G♯", expected: 8},
		{name: "Cb wraps", note: "Cb", expected: 11},
		{name: "B# wraps", note: "B#", expected: 0},
		{name: "whitespace", note: " E ", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := PitchClassOf(tt.note)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pc)
		})
	}
}

func TestPitchClassOf_Invalid(t *testing.T) {
	for _, note := range []string{"", "H", "C##", "Cx", "1", "Do"} {
		_, err := PitchClassOf(note)
		assert.True(t, errors.Is(err, ErrInvalidNote), "expected ErrInvalidNote for %q, got %v", note, err)
	}
}

func TestEnharmonicSpellingsAreSamePitch(t *testing.T) {
	pairs := [][2]string{{"Db", "C#"}, {"Eb", "D#"}, {"Gb", "F#"}, {"Ab", "G#"}, {"Bb", "A#"}}
	for _, pair := range pairs {
		a, err := PitchClassOf(pair[0])
		require.NoError(t, err)
		b, err := PitchClassOf(pair[1])
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s should equal %s", pair[0], pair[1])

		name, err := NormalizeNoteName(pair[0])
		require.NoError(t, err)
		assert.Equal(t, pair[1], name)
	}
}

func TestFretPitchClass(t *testing.T) {
	pc, err := FretPitchClass(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "E", pc.String())

	pc, err = FretPitchClass(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "C", pc.String())

	pc, err = FretPitchClass(5, 12)
	require.NoError(t, err)
	assert.Equal(t, "E", pc.String())

	_, err = FretPitchClass(0, -2)
	assert.ErrorIs(t, err, ErrInvalidFret)

	_, err = FretPitchClass(6, 0)
	assert.ErrorIs(t, err, ErrInvalidFret)

	_, err = FretPitchClass(2, 25)
	assert.ErrorIs(t, err, ErrInvalidFret)

	_, err = FretPitchClass(2, MutedFret)
	assert.ErrorIs(t, err, ErrMutedString)
}

func TestFindFretForPitchClass(t *testing.T) {
	for s := 0; s < NumStrings; s++ {
		for target := PitchClass(0); target < NumPitchClasses; target++ {
			fret, err := FindFretForPitchClass(target, s)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, fret, 0)
			assert.Less(t, fret, NumPitchClasses)

			pc, err := FretPitchClass(s, fret)
			require.NoError(t, err)
			assert.Equal(t, target, pc)
		}
	}

	_, err := FindFretForPitchClass(0, -1)
	assert.ErrorIs(t, err, ErrInvalidFret)
}

func TestIntervalOracle(t *testing.T) {
	oracle := IntervalOracle{}
	a, _ := PitchClassOf("A")

	assert.Equal(t, []string{"A", "C", "E"}, NoteNames(oracle.ChordTones(a, "minor")))
	assert.Equal(t, []string{"A", "C#", "E"}, NoteNames(oracle.ChordTones(a, "")))
	assert.Equal(t, []string{"A", "C#", "E", "G"}, NoteNames(oracle.ChordTones(a, "7")))
	assert.Equal(t, []string{"A", "C#", "E", "G#"}, NoteNames(oracle.ChordTones(a, "M7")))
	assert.Equal(t, []string{"A", "C", "E", "G"}, NoteNames(oracle.ChordTones(a, "min7")))
	assert.Equal(t, []string{"A", "D", "E"}, NoteNames(oracle.ChordTones(a, "sus")))
	assert.Empty(t, oracle.ChordTones(a, "13#11"))
}

func TestParseChordSymbol(t *testing.T) {
	tests := []struct {
		symbol  string
		root    string
		quality string
	}{
		{"C", "C", QualityMajor},
		{"Am", "A", QualityMinor},
		{"Ebm7", "D#", QualityMinor7},
		{"Bb", "A#", QualityMajor},
		{"Gmaj7", "G", QualityMajor7},
		{"F#dim", "F#", QualityDiminished},
		{"Dsus2", "D", QualitySus2},
		{"Em/G", "E", QualityMinor},
		{"B♭7", "A#", QualityDominant7},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			root, quality, err := ParseChordSymbol(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.root, root)
			assert.Equal(t, tt.quality, quality)
		})
	}

	_, _, err := ParseChordSymbol("Hm")
	assert.ErrorIs(t, err, ErrInvalidNote)

	_, _, err = ParseChordSymbol("C/X")
	assert.ErrorIs(t, err, ErrInvalidNote)

	_, _, err = ParseChordSymbol("Cwhatever")
	assert.ErrorIs(t, err, ErrUnknownQuality)
}
