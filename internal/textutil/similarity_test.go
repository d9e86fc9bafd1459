package textutil

import (
	"math"
	"reflect"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("Alien"), 0},
		{"b nil", NewFingerprint("Alien"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIgnoresCase(t *testing.T) {
	a := NewFingerprint("The Matrix")
	b := NewFingerprint("the   MATRIX")

	got := CosineSimilarity(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("CosineSimilarity(case variants) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityTypoStaysHigh(t *testing.T) {
	got := CosineSimilarity(NewFingerprint("Inception"), NewFingerprint("Inceptoin"))
	if got < 0.5 {
		t.Errorf("expected typo to stay similar, got %v", got)
	}
	if other := CosineSimilarity(NewFingerprint("Inception"), NewFingerprint("Jaws")); other >= got {
		t.Errorf("unrelated title scored %v >= typo score %v", other, got)
	}
}

func TestGramsShortTitle(t *testing.T) {
	grams := Grams("Up")
	want := []string{" up", "up "}
	if !reflect.DeepEqual(grams, want) {
		t.Fatalf("Grams(Up) = %q, want %q", grams, want)
	}
	if Grams("   ") != nil {
		t.Fatal("expected nil grams for blank text")
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"Jaws", "Inception", "Interstellar", "Insomnia"}
	got := Closest("inceptoin", candidates, 0.4, 2)
	if len(got) == 0 || got[0] != "Inception" {
		t.Fatalf("expected Inception first, got %v", got)
	}
	if len(got) > 2 {
		t.Fatalf("expected at most 2 suggestions, got %v", got)
	}
	if Closest("", candidates, 0.1, 3) != nil {
		t.Fatal("expected nil for blank target")
	}
}
