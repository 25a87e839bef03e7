package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	assert.Greater(t, lib.Len(), 30)

	c, _ := theory.PitchClassOf("C")
	found := lib.Lookup(c, "major")
	require.Len(t, found, 1)
	assert.Equal(t, caged.Frets{-1, 3, 2, 0, 1, 0}, found[0].Frets)
	assert.Equal(t, 1, found[0].BaseFret)

	b, _ := theory.PitchClassOf("B")
	found = lib.Lookup(b, "m")
	require.Len(t, found, 1)
	assert.Equal(t, 2, found[0].BaseFret)
	assert.Equal(t, []int{1}, found[0].Barres)

	gb, _ := theory.PitchClassOf("Gb")
	assert.Len(t, lib.Lookup(gb, "minor"), 1, "flat spelling should find the F# entry")

	assert.Nil(t, lib.Lookup(c, "13#11"))
	assert.Contains(t, lib.Chords(), "C 7")
}

// Every curated voicing must sound only notes of its chord
func TestDefaultLibrary_VoicingsAreChordTones(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	oracle := theory.IntervalOracle{}

	for k, voicings := range lib.voicings {
		tones := oracle.ChordTones(k.root, k.quality)
		require.NotEmpty(t, tones)
		for _, raw := range voicings {
			abs := caged.AbsoluteFrets(raw.Frets, raw.BaseFret)
			for s, fret := range abs {
				if fret == theory.MutedFret {
					continue
				}
				pc, err := theory.FretPitchClass(s, fret)
				require.NoError(t, err)
				assert.Contains(t, tones, pc, "%s %s string %d fret %d", k.root, k.quality, s, fret)
			}
		}
	}
}

func TestDefaultLibrary_WithAssembler(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	assembler := caged.NewAssembler(theory.IntervalOracle{}, lib)

	voicings, err := assembler.GetVoicings("A", "minor", caged.DefaultOptions())
	require.NoError(t, err)

	shapes := map[caged.Shape]caged.Voicing{}
	for _, v := range voicings {
		shapes[v.Shape] = v
	}
	for _, want := range []caged.Shape{caged.ShapeA, caged.ShapeE, caged.ShapeD} {
		v, ok := shapes[want]
		require.True(t, ok, "missing %s shape", want)
		assert.True(t, v.Valid)
		assert.Equal(t, []string{"A", "C", "E"}, theory.NoteNames(v.ChordTones))
	}
	assert.Equal(t, caged.SourceLibrary, shapes[caged.ShapeA].Source)

	voicings, err = assembler.GetVoicings("G", "7", caged.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, voicings, 1)
	assert.Equal(t, caged.ShapeG, voicings[0].Shape)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad yaml", yaml: "chords: [\n"},
		{name: "bad root", yaml: "chords:\n  - root: H\n    quality: major\n    voicings: []\n"},
		{name: "bad quality", yaml: "chords:\n  - root: C\n    quality: wobbly\n    voicings: []\n"},
		{name: "five frets", yaml: "chords:\n  - root: C\n    quality: major\n    voicings:\n      - frets: [x, 3, 2, 0, 1]\n"},
		{name: "fret off the board", yaml: "chords:\n  - root: C\n    quality: major\n    voicings:\n      - frets: [x, 3, 2, 0, 1, 30]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestOpen(t *testing.T) {
	lib, err := Open("")
	require.NoError(t, err)
	assert.Greater(t, lib.Len(), 0)

	path := filepath.Join(t.TempDir(), "voicings.yaml")
	content := "chords:\n  - root: Eb\n    quality: major\n    voicings:\n      - frets: [x, 1, 3, 3, 3, 1]\n        base_fret: 6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	lib, err = Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())

	eb, _ := theory.PitchClassOf("D#")
	found := lib.Lookup(eb, "")
	require.Len(t, found, 1)
	assert.Equal(t, 6, found[0].BaseFret)

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
