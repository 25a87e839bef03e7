package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/models"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("VOICING_LIBRARY_PATH", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTransposeCmd(t *testing.T) {
	out, err := runCLI(t, "transpose", "G", "E")
	require.NoError(t, err)
	assert.Contains(t, out, "G major, E shape (base fret 3)")
	assert.Contains(t, out, "E|---3--|")
	assert.Contains(t, out, "G|---4--|")

	out, err = runCLI(t, "transpose", "C", "a", "--quality", "minor")
	require.NoError(t, err)
	assert.Contains(t, out, "C minor, A shape")

	_, err = runCLI(t, "transpose", "A", "C")
	assert.ErrorIs(t, err, caged.ErrUntransposableShape)

	_, err = runCLI(t, "transpose", "A", "Q")
	assert.ErrorIs(t, err, caged.ErrUnknownShape)
}

func TestClassifyCmd(t *testing.T) {
	out, err := runCLI(t, "classify", "x", "3", "2", "0", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "C\n", out)

	out, err = runCLI(t, "classify", "1", "3", "3", "2", "1", "1", "--base-fret", "5")
	require.NoError(t, err)
	assert.Equal(t, "E\n", out)

	_, err = runCLI(t, "classify", "x", "3", "2", "0", "1")
	assert.Error(t, err)

	_, err = runCLI(t, "classify", "x", "3", "2", "0", "1", "99")
	assert.ErrorIs(t, err, caged.ErrInvalidFrets)
}

func TestVoicingsCmd_Tab(t *testing.T) {
	out, err := runCLI(t, "voicings", "A", "minor", "--max", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "A minor: A C E")
	assert.Contains(t, out, "A shape, base fret 1, intermediate, library")
	assert.Contains(t, out, "G shape, base fret 2")
	assert.NotContains(t, out, "E shape")
}

func TestVoicingsCmd_JSON(t *testing.T) {
	out, err := runCLI(t, "voicings", "Am", "--json")
	require.NoError(t, err)

	var resp models.VoicingsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "A", resp.Root)
	assert.Equal(t, "minor", resp.Quality)
	assert.Len(t, resp.Voicings, 5)
}

func TestVoicingsCmd_LibraryFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voicings.yaml")
	content := "chords:\n  - root: C\n    quality: major\n    voicings:\n      - frets: [x, 3, 2, 0, 1, 0]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := runCLI(t, "voicings", "C", "--library", path, "--json", "--max", "0")
	require.NoError(t, err)

	var resp models.VoicingsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Voicings)
	assert.Equal(t, "C", resp.Voicings[0].Shape)
	assert.Equal(t, "library", resp.Voicings[0].Source)

	_, err = runCLI(t, "voicings", "C", "--library", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVoicingsCmd_Errors(t *testing.T) {
	_, err := runCLI(t, "voicings", "H", "minor")
	assert.ErrorIs(t, err, theory.ErrInvalidNote)

	out, err := runCLI(t, "voicings", "C", "wobbly")
	require.NoError(t, err)
	assert.Contains(t, out, "no voicings found")
}

func TestTonesCmd(t *testing.T) {
	out, err := runCLI(t, "tones", "F#m7b5")
	require.NoError(t, err)
	assert.Equal(t, "F# A C E\n", out)

	_, err = runCLI(t, "tones", "Cwobbly")
	assert.ErrorIs(t, err, theory.ErrUnknownQuality)
}
