package caged

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Conceptual-Machines/caged-api/internal/theory"
	"golang.org/x/sync/singleflight"
)

// CachedAssembler memoizes GetVoicings. Results depend only on the chord and
// the options, so entries never expire. Concurrent identical requests share a
// single computation.
type CachedAssembler struct {
	assembler *Assembler

	mu      sync.RWMutex
	entries map[string][]Voicing
	group   singleflight.Group
}

// NewCachedAssembler wraps an assembler
func NewCachedAssembler(assembler *Assembler) *CachedAssembler {
	return &CachedAssembler{
		assembler: assembler,
		entries:   make(map[string][]Voicing),
	}
}

// GetVoicings returns the memoized voicings, computing them on first use.
// Errors and chords the oracle does not know are never cached.
func (c *CachedAssembler) GetVoicings(root, quality string, opts Options) ([]Voicing, error) {
	pc, err := theory.PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	q := theory.NormalizeQuality(quality)
	if len(c.assembler.oracle.ChordTones(pc, q)) == 0 {
		return c.assembler.GetVoicings(root, q, opts)
	}

	opts = cacheOptions(opts)
	key := fmt.Sprintf("%d|%s|%d|%d|%d|%t", pc, q,
		opts.MaxCount, opts.MinFret, opts.MaxFret, opts.OnlyValidated)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cloneVoicings(cached), nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		voicings, err := c.assembler.GetVoicings(root, q, opts)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = voicings
		c.mu.Unlock()
		return voicings, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneVoicings(result.([]Voicing)), nil
}

// cacheOptions maps options that select the same voicings onto one key. At
// most one voicing per shape is returned, so any MaxCount of len(AllShapes) or
// more (or no limit) is the same query; fret bounds past the neck are too.
func cacheOptions(opts Options) Options {
	opts = opts.withDefaults()
	if opts.MaxCount <= 0 || opts.MaxCount > len(AllShapes) {
		opts.MaxCount = len(AllShapes)
	}
	if opts.MinFret > theory.MaxFret+1 {
		opts.MinFret = theory.MaxFret + 1
	}
	if opts.MaxFret > theory.MaxFret {
		opts.MaxFret = theory.MaxFret
	}
	return opts
}

// Len returns the number of cached chord queries
func (c *CachedAssembler) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cloneVoicings copies every slice a caller could modify
func cloneVoicings(in []Voicing) []Voicing {
	out := make([]Voicing, len(in))
	for i, v := range in {
		v.Barres = slices.Clone(v.Barres)
		v.ChordTones = slices.Clone(v.ChordTones)
		v.Sounding = slices.Clone(v.Sounding)
		v.Corrections = slices.Clone(v.Corrections)
		out[i] = v
	}
	return out
}
