package library

import (
	"fmt"
	"os"
	"sort"

	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/logger"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"github.com/Conceptual-Machines/caged-api/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// file is the YAML document layout
type file struct {
	Chords []chordEntry `yaml:"chords"`
}

type chordEntry struct {
	Root     string         `yaml:"root"`
	Quality  string         `yaml:"quality"`
	Voicings []voicingEntry `yaml:"voicings"`
}

type voicingEntry struct {
	Frets    []string `yaml:"frets"`
	BaseFret int      `yaml:"base_fret"`
	Barres   []int    `yaml:"barres"`
}

type key struct {
	root    theory.PitchClass
	quality string
}

// Library holds curated voicings keyed by root pitch class and quality
type Library struct {
	voicings map[key][]caged.RawVoicing
	count    int
}

// Load decodes a YAML voicing library. Every entry is checked: roots must be
// note names, qualities must be known to the interval oracle and each voicing
// must have six frets in [-1, 24].
func Load(data []byte) (*Library, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse voicing library: %w", err)
	}

	lib := &Library{voicings: make(map[key][]caged.RawVoicing)}
	for i, chord := range doc.Chords {
		pc, err := theory.PitchClassOf(chord.Root)
		if err != nil {
			return nil, fmt.Errorf("chord %d: %w", i, err)
		}
		quality := theory.NormalizeQuality(chord.Quality)
		if !theory.KnownQuality(quality) {
			return nil, fmt.Errorf("chord %d (%s): %w: %q", i, chord.Root, theory.ErrUnknownQuality, chord.Quality)
		}

		k := key{root: pc, quality: quality}
		for j, v := range chord.Voicings {
			frets, err := caged.ParseFrets(v.Frets)
			if err != nil {
				return nil, fmt.Errorf("chord %d (%s %s) voicing %d: %w", i, chord.Root, quality, j, err)
			}
			baseFret := v.BaseFret
			if baseFret < 1 {
				baseFret = 1
			}
			lib.voicings[k] = append(lib.voicings[k], caged.RawVoicing{
				Frets:    frets,
				BaseFret: baseFret,
				Barres:   v.Barres,
			})
			lib.count++
		}
	}
	return lib, nil
}

// LoadFile reads a YAML voicing library from disk
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read voicing library: %w", err)
	}
	return Load(data)
}

// Default decodes the library embedded in the binary
func Default() (*Library, error) {
	return Load(embedded.VoicingsYAML)
}

// Open loads the library at path, or the embedded one when path is empty
func Open(path string) (*Library, error) {
	if path == "" {
		return Default()
	}
	lib, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded voicing library", logger.Fields{"path": path, "voicings": lib.Len()})
	return lib, nil
}

// Lookup returns the curated voicings for a chord, or nil when none are curated
func (l *Library) Lookup(root theory.PitchClass, quality string) []caged.RawVoicing {
	found := l.voicings[key{root: root, quality: theory.NormalizeQuality(quality)}]
	if len(found) == 0 {
		return nil
	}
	out := make([]caged.RawVoicing, len(found))
	copy(out, found)
	return out
}

// Len returns the number of curated voicings
func (l *Library) Len() int {
	return l.count
}

// Chords lists the curated chords as "root quality" pairs, sorted
func (l *Library) Chords() []string {
	out := make([]string, 0, len(l.voicings))
	for k := range l.voicings {
		out = append(out, k.root.String()+" "+k.quality)
	}
	sort.Strings(out)
	return out
}
