package handlers

const (
	// Query defaults
	defaultQuality  = "major"
	defaultValidate = true

	// Batch limits
	maxBatchChords   = 12 // Maximum chord symbols per batch request
	batchConcurrency = 4  // Chords computed in parallel per batch request
)
