package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"marquee/internal/services"
)

// List returns every movie in insertion order. An empty collection yields an
// empty slice.
func (s *Store) List(ctx context.Context) ([]Movie, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	movies, err := scanMovies(rows)
	if err != nil {
		return nil, fmt.Errorf("scan movies: %w", err)
	}
	return movies, nil
}

// Get fetches a single movie by title.
func (s *Store) Get(ctx context.Context, title string) (Movie, error) {
	ctx = ensureContext(ctx)
	title = NormalizeTitle(title)
	row := s.db.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE title = ?", title)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Movie{}, notFound("get", title)
	}
	if err != nil {
		return Movie{}, fmt.Errorf("get movie %q: %w", title, err)
	}
	return movie, nil
}

// Add inserts a movie. The title is stored normalized: surrounding
// whitespace is trimmed and interior runs collapse to one space, so
// "  The   Thing " is stored and returned as "The Thing". Other fields are
// stored as given. Titles already present after normalization are rejected
// with services.ErrDuplicate and the stored record is left as it was.
func (s *Store) Add(ctx context.Context, movie Movie) (Movie, error) {
	movie.Title = NormalizeTitle(movie.Title)
	if err := movie.Validate(); err != nil {
		return Movie{}, err
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO movies (title, year, rating, poster_url, created_at)
        VALUES (?, ?, ?, ?, ?)`,
		movie.Title,
		movie.Year,
		movie.Rating,
		nullableString(movie.PosterURL),
		timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Movie{}, services.Wrap(services.ErrDuplicate, "catalog", "add",
				fmt.Sprintf("%q is already in the collection", movie.Title), nil)
		}
		return Movie{}, fmt.Errorf("insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Movie{}, fmt.Errorf("last insert id: %w", err)
	}
	return s.getByID(ctx, id)
}

// Update changes the rating of an existing movie. No other field is touched.
func (s *Store) Update(ctx context.Context, title string, rating float64) (Movie, error) {
	title = NormalizeTitle(title)
	if err := ValidateRating(rating); err != nil {
		return Movie{}, err
	}
	res, err := s.execWithRetry(ctx, "UPDATE movies SET rating = ? WHERE title = ?", rating, title)
	if err != nil {
		return Movie{}, fmt.Errorf("update movie %q: %w", title, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Movie{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return Movie{}, notFound("update", title)
	}
	return s.Get(ctx, title)
}

// Delete removes a movie by title.
func (s *Store) Delete(ctx context.Context, title string) error {
	title = NormalizeTitle(title)
	res, err := s.execWithRetry(ctx, "DELETE FROM movies WHERE title = ?", title)
	if err != nil {
		return fmt.Errorf("delete movie %q: %w", title, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound("delete", title)
	}
	return nil
}

// Count returns the number of stored movies.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

func (s *Store) getByID(ctx context.Context, id int64) (Movie, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id)
	movie, err := scanMovie(row)
	if err != nil {
		return Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	return movie, nil
}

func notFound(operation, title string) error {
	return services.Wrap(services.ErrNotFound, "catalog", operation,
		fmt.Sprintf("%q is not in the collection", title), nil)
}
