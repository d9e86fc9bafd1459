package catalog

import (
	"database/sql"
	"errors"
	"time"
)

const movieColumns = "id, title, year, rating, poster_url, created_at"

func scanMovie(scanner interface{ Scan(dest ...any) error }) (Movie, error) {
	var (
		movie      Movie
		posterURL  sql.NullString
		createdRaw sql.NullString
	)
	if err := scanner.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Rating,
		&posterURL,
		&createdRaw,
	); err != nil {
		return Movie{}, err
	}
	movie.PosterURL = posterURL.String
	if created, err := parseTimeString(createdRaw.String); err == nil {
		movie.CreatedAt = created
	}
	return movie, nil
}

func scanMovies(rows *sql.Rows) ([]Movie, error) {
	defer rows.Close()
	movies := make([]Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
