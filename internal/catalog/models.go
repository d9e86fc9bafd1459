package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"marquee/internal/services"
)

// Rating bounds accepted by the store.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// Movie is a single tracked film. Title is the logical key.
type Movie struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Rating    float64   `json:"rating"`
	PosterURL string    `json:"poster_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the ratings in the collection. Best and Worst hold every
// movie sharing the top and bottom rating, in insertion order.
type Stats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Best    []Movie `json:"best"`
	Worst   []Movie `json:"worst"`
}

// Health captures diagnostic information about the catalog database.
type Health struct {
	DBPath         string `json:"db_path"`
	DatabaseExists bool   `json:"database_exists"`
	SchemaVersion  int    `json:"schema_version"`
	IntegrityCheck bool   `json:"integrity_check"`
	TotalMovies    int    `json:"total_movies"`
	Error          string `json:"error,omitempty"`
}

// NormalizeTitle trims surrounding whitespace and collapses interior runs.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// ValidateRating reports services.ErrValidation when rating is not a finite
// number within [MinRating, MaxRating].
func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating < MinRating || rating > MaxRating {
		return services.Wrap(services.ErrValidation, "catalog", "validate",
			fmt.Sprintf("rating %v outside %.1f-%.1f", rating, MinRating, MaxRating), nil)
	}
	return nil
}

// Validate checks the fields a caller supplies before insertion.
func (m Movie) Validate() error {
	if NormalizeTitle(m.Title) == "" {
		return services.Wrap(services.ErrValidation, "catalog", "validate", "title is required", nil)
	}
	if m.Year <= 0 {
		return services.Wrap(services.ErrValidation, "catalog", "validate",
			fmt.Sprintf("year %d must be positive", m.Year), nil)
	}
	return ValidateRating(m.Rating)
}
