package embedded

import (
	_ "embed"
)

// Curated voicing library shipped with the binary
//
//go:embed data/voicings.yaml
var VoicingsYAML []byte
