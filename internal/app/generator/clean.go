package generator

import (
	"regexp"
	"strings"
)

var (
	bareColonRe = regexp.MustCompile(`^:\s*`)
	numberingRe = regexp.MustCompile(`^(\d+\.?\s*)`)
)

// unwantedPrefixes are lead-in phrases the model sometimes emits despite the
// output-format instruction. Matched case-insensitively at the start.
var unwantedPrefixes = []string{"definisi:", "arti:", "makna:", "pengertian:"}

// Clean strips formatting artifacts from a generated definition: the echoed
// word, stray leading colons, enumerated-sense numbering, and known lead-in
// phrases. Pure and idempotent on already-clean text; an empty result is
// passed through unchanged.
func Clean(word, definition string) string {
	// Remove any format where the word is followed by a colon.
	wordColonRe := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(word) + `\s*:\s*`)
	definition = strings.TrimSpace(wordColonRe.ReplaceAllString(definition, ""))

	// Handle cases where only a colon appears at the beginning.
	definition = strings.TrimSpace(bareColonRe.ReplaceAllString(definition, ""))

	// Remove the word if it still appears at the beginning (without colon),
	// together with enumerated-sense numbering like "kudus 2.".
	if strings.HasPrefix(strings.ToLower(definition), strings.ToLower(word)) {
		wordNumberRe := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(word) + `\s*\d*\.?\s*`)
		definition = strings.TrimSpace(wordNumberRe.ReplaceAllString(definition, ""))
	}

	// Handle any remaining numbering patterns at the beginning.
	definition = strings.TrimSpace(numberingRe.ReplaceAllString(definition, ""))

	// Remove common unwanted lead-in phrases.
	for _, prefix := range unwantedPrefixes {
		if strings.HasPrefix(strings.ToLower(definition), prefix) {
			definition = strings.TrimSpace(definition[len(prefix):])
		}
	}

	return definition
}
