package domain

// GenerationResult is one output record of a batch run.
// ReferenceDefinition is nil when no reference entry matched the word.
type GenerationResult struct {
	Word                string
	GeneratedDefinition string
	ReferenceDefinition *string
}

// HasReference reports whether a reference definition was found for this word.
func (r GenerationResult) HasReference() bool {
	return r.ReferenceDefinition != nil
}
