// Package textutil provides text helpers for movie titles: Unicode case
// folding for case-insensitive matching, character n-gram fingerprints for
// "did you mean" suggestions, and file name sanitization for generated pages.
//
// Fingerprints count character trigrams of the folded, whitespace-collapsed
// title so small typos still share most of their grams with the intended
// title.
package textutil
