package models

import (
	"github.com/Conceptual-Machines/caged-api/internal/caged"
	"github.com/Conceptual-Machines/caged-api/internal/theory"
)

// Voicing is the wire form of one chord fingering
type Voicing struct {
	Shape         string       `json:"shape"`
	ClassifiedAs  string       `json:"classified_as"`
	Frets         []int        `json:"frets"`          // Absolute frets, low E first, -1 = muted
	RelativeFrets []int        `json:"relative_frets"` // Fretted strings relative to base_fret
	BaseFret      int          `json:"base_fret"`
	Barres        []int        `json:"barres"`
	Difficulty    string       `json:"difficulty"`
	Valid         bool         `json:"valid"`
	Complete      bool         `json:"complete"` // Every chord tone sounds, fifth included
	Source        string       `json:"source"`   // "library" or "template"
	ChordTones    []string     `json:"chord_tones"`
	SoundingNotes []string     `json:"sounding_notes"`
	Corrections   []Correction `json:"corrections"`
	Tab           string       `json:"tab,omitempty"`
}

// Correction reports a string that was muted during validation
type Correction struct {
	String       int    `json:"string"`
	OriginalFret int    `json:"original_fret"`
	Note         string `json:"note"`
	Reason       string `json:"reason"`
}

// VoicingsResponse answers a single chord query
type VoicingsResponse struct {
	Chord      string    `json:"chord,omitempty"`
	Root       string    `json:"root"`
	Quality    string    `json:"quality"`
	ChordTones []string  `json:"chord_tones"`
	Voicings   []Voicing `json:"voicings"`
}

// BatchVoicingsResponse answers several chord queries in request order
type BatchVoicingsResponse struct {
	Results []VoicingsResponse `json:"results"`
}

// ClassifyRequest is a fret pattern to label with a CAGED shape
type ClassifyRequest struct {
	Frets    []int `json:"frets" binding:"required"`
	BaseFret int   `json:"base_fret"`
}

// ClassifyResponse carries the classifier's label
type ClassifyResponse struct {
	Shape string `json:"shape"`
}

// TranspositionResponse is a template moved to a new root
type TranspositionResponse struct {
	Shape       string       `json:"shape"`
	Root        string       `json:"root"`
	Quality     string       `json:"quality"`
	Offset      int          `json:"offset"`
	Frets       []int        `json:"frets"`
	BaseFret    int          `json:"base_fret"`
	Corrections []Correction `json:"corrections"`
	Tab         string       `json:"tab,omitempty"`
}

// ChordTonesResponse is the oracle's answer for one chord
type ChordTonesResponse struct {
	Root    string   `json:"root"`
	Quality string   `json:"quality"`
	Tones   []string `json:"tones"`
}

// FromVoicing converts a core voicing into its wire form
func FromVoicing(v caged.Voicing) Voicing {
	barres := v.Barres
	if barres == nil {
		barres = []int{}
	}
	return Voicing{
		Shape:         string(v.Shape),
		ClassifiedAs:  string(v.ClassifiedAs),
		Frets:         fretSlice(v.Frets),
		RelativeFrets: fretSlice(v.RelativeFrets()),
		BaseFret:      v.BaseFret,
		Barres:        barres,
		Difficulty:    string(v.Difficulty),
		Valid:         v.Valid,
		Complete:      v.Complete,
		Source:        string(v.Source),
		ChordTones:    theory.NoteNames(v.ChordTones),
		SoundingNotes: theory.NoteNames(v.Sounding),
		Corrections:   FromCorrections(v.Corrections),
		Tab:           v.Tab(),
	}
}

// FromVoicings converts a result list, never returning nil
func FromVoicings(voicings []caged.Voicing) []Voicing {
	out := make([]Voicing, 0, len(voicings))
	for _, v := range voicings {
		out = append(out, FromVoicing(v))
	}
	return out
}

// FromCorrections converts muted-string records, never returning nil
func FromCorrections(corrections []caged.Correction) []Correction {
	out := make([]Correction, 0, len(corrections))
	for _, c := range corrections {
		out = append(out, Correction{
			String:       c.String,
			OriginalFret: c.OriginalFret,
			Note:         c.PitchClass.String(),
			Reason:       c.Reason,
		})
	}
	return out
}

// FromTransposition converts a transposed template
func FromTransposition(t *caged.Transposition) TranspositionResponse {
	return TranspositionResponse{
		Shape:       string(t.Shape),
		Root:        t.Root.String(),
		Quality:     t.Quality,
		Offset:      t.Offset,
		Frets:       fretSlice(t.Frets),
		BaseFret:    t.BaseFret(),
		Corrections: FromCorrections(t.Corrections),
		Tab:         t.Frets.Tab(),
	}
}

func fretSlice(f caged.Frets) []int {
	out := make([]int, len(f))
	copy(out, f[:])
	return out
}
