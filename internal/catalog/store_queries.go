package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"marquee/internal/services"
	"marquee/internal/textutil"
)

const suggestionThreshold = 0.45

// Search returns movies whose title contains fragment, compared with Unicode
// case folding. A blank fragment matches every movie.
func (s *Store) Search(ctx context.Context, fragment string) ([]Movie, error) {
	movies, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]Movie, 0, len(movies))
	for _, movie := range movies {
		if textutil.ContainsFold(movie.Title, fragment) {
			matches = append(matches, movie)
		}
	}
	return matches, nil
}

// SortedByRating returns every movie ordered by rating, highest first. Equal
// ratings keep insertion order.
func (s *Store) SortedByRating(ctx context.Context) ([]Movie, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY rating DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("sort movies: %w", err)
	}
	movies, err := scanMovies(rows)
	if err != nil {
		return nil, fmt.Errorf("scan movies: %w", err)
	}
	return movies, nil
}

// Stats computes average and median ratings plus the best and worst rated
// movies. An empty collection reports services.ErrNotFound.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	movies, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	if len(movies) == 0 {
		return Stats{}, services.Wrap(services.ErrNotFound, "catalog", "stats", "the collection is empty", nil)
	}
	return computeStats(movies), nil
}

func computeStats(movies []Movie) Stats {
	ratings := make([]float64, len(movies))
	var (
		sum  float64
		best = movies[0].Rating
		low  = movies[0].Rating
	)
	for i, movie := range movies {
		ratings[i] = movie.Rating
		sum += movie.Rating
		best = max(best, movie.Rating)
		low = min(low, movie.Rating)
	}

	stats := Stats{
		Count:   len(movies),
		Average: sum / float64(len(movies)),
		Median:  median(ratings),
	}
	for _, movie := range movies {
		if movie.Rating == best {
			stats.Best = append(stats.Best, movie)
		}
		if movie.Rating == low {
			stats.Worst = append(stats.Worst, movie)
		}
	}
	return stats
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Random picks one movie. A nil rng uses the shared generator. An empty
// collection reports services.ErrNotFound.
func (s *Store) Random(ctx context.Context, rng *rand.Rand) (Movie, error) {
	movies, err := s.List(ctx)
	if err != nil {
		return Movie{}, err
	}
	if len(movies) == 0 {
		return Movie{}, services.Wrap(services.ErrNotFound, "catalog", "random", "the collection is empty", nil)
	}
	var idx int
	if rng != nil {
		idx = rng.IntN(len(movies))
	} else {
		idx = rand.IntN(len(movies))
	}
	return movies[idx], nil
}

// FindFold returns the stored movie whose title matches title under Unicode
// case folding. An exact match wins over a folded one.
func (s *Store) FindFold(ctx context.Context, title string) (Movie, error) {
	movie, err := s.Get(ctx, title)
	if err == nil || !errors.Is(err, services.ErrNotFound) {
		return movie, err
	}
	movies, err := s.List(ctx)
	if err != nil {
		return Movie{}, err
	}
	title = NormalizeTitle(title)
	for _, candidate := range movies {
		if textutil.EqualFold(candidate.Title, title) {
			return candidate, nil
		}
	}
	return Movie{}, notFound("find", title)
}

// Suggest returns up to limit stored titles resembling title, best first.
func (s *Store) Suggest(ctx context.Context, title string, limit int) ([]string, error) {
	movies, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(movies))
	for i, movie := range movies {
		titles[i] = movie.Title
	}
	return textutil.Closest(title, titles, suggestionThreshold, limit), nil
}

// Health returns diagnostic information about the catalog database.
func (s *Store) Health(ctx context.Context) (Health, error) {
	ctx = ensureContext(ctx)
	health := Health{DBPath: s.path}
	if s.path == "" {
		return health, errors.New("catalog database path is unknown")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat catalog database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("catalog database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	if s.db == nil {
		return health, errors.New("catalog database connection unavailable")
	}

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.QueryRowContext(connCtx, "SELECT version FROM schema_version LIMIT 1").Scan(&health.SchemaVersion); err != nil {
		health.Error = err.Error()
		return health, nil
	}

	var integrity string
	if err := s.db.QueryRowContext(connCtx, "PRAGMA integrity_check").Scan(&integrity); err != nil {
		health.Error = err.Error()
		return health, nil
	}
	health.IntegrityCheck = integrity == "ok"
	if !health.IntegrityCheck {
		health.Error = integrity
	}

	if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM movies").Scan(&health.TotalMovies); err != nil {
		health.Error = err.Error()
	}
	return health, nil
}
