package textutil

import "math"

const gramSize = 3

// Fingerprint represents a character-trigram frequency vector for fuzzy title
// comparison.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text is blank.
func NewFingerprint(text string) *Fingerprint {
	grams := Grams(text)
	if len(grams) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(grams))
	for _, gram := range grams {
		counts[gram]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		tokens: counts,
		norm:   math.Sqrt(norm),
	}
}

// Grams splits folded, whitespace-collapsed text into overlapping character
// trigrams. The text is padded with one space on each side so short titles
// ("Up") still yield grams.
func Grams(text string) []string {
	normalized := CollapseSpace(Fold(text))
	if normalized == "" {
		return nil
	}
	runes := []rune(" " + normalized + " ")
	if len(runes) < gramSize {
		return []string{string(runes)}
	}
	grams := make([]string, 0, len(runes)-gramSize+1)
	for i := 0; i+gramSize <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+gramSize]))
	}
	return grams
}
