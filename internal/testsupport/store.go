package testsupport

import (
	"context"
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddMovie inserts a movie for tests using the provided store.
func AddMovie(t testing.TB, store *catalog.Store, title string, year int, rating float64, poster string) catalog.Movie {
	t.Helper()

	movie, err := store.Add(context.Background(), catalog.Movie{
		Title:     title,
		Year:      year,
		Rating:    rating,
		PosterURL: poster,
	})
	if err != nil {
		t.Fatalf("store.Add(%q): %v", title, err)
	}
	return movie
}
