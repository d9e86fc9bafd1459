package textutil

import (
	"sort"
)

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Closest returns up to limit candidates whose similarity to target is at
// least threshold, best match first. Ties keep candidate order.
func Closest(target string, candidates []string, threshold float64, limit int) []string {
	want := NewFingerprint(target)
	if want == nil || limit <= 0 {
		return nil
	}
	type scored struct {
		value string
		score float64
	}
	matches := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := CosineSimilarity(want, NewFingerprint(candidate))
		if score >= threshold {
			matches = append(matches, scored{value: candidate, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.value
	}
	return out
}
