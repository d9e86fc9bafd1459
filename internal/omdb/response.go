package omdb

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"marquee/internal/services"
)

const notAvailable = "N/A"

// response mirrors the OMDb JSON fields marquee consumes.
type response struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

func (r response) errorText(fallback string) string {
	if text := strings.TrimSpace(r.Error); text != "" {
		return text
	}
	return fallback
}

// failure classifies a Response "False" payload.
func (r response) failure(title string) error {
	if !strings.EqualFold(strings.TrimSpace(r.Response), "false") {
		return nil
	}
	text := r.errorText("no match")
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "api key"):
		return services.Wrap(services.ErrConfiguration, "omdb", "lookup", text, nil)
	case strings.Contains(lower, "limit"):
		return services.Wrap(services.ErrNetwork, "omdb", "lookup", text, nil)
	default:
		return services.Wrap(services.ErrNotFound, "omdb", "lookup", fmt.Sprintf("%s (%q)", text, title), nil)
	}
}

func (r response) metadata(query string) (Metadata, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" || title == notAvailable {
		return Metadata{}, services.Wrap(services.ErrNetwork, "omdb", "decode",
			fmt.Sprintf("response for %q has no title", query), nil)
	}
	year, err := ParseYear(r.Year)
	if err != nil {
		return Metadata{}, services.Wrap(services.ErrValidation, "omdb", "decode",
			fmt.Sprintf("%s: year %q", title, r.Year), err)
	}
	rating, err := ParseRating(r.IMDbRating)
	if err != nil {
		return Metadata{}, services.Wrap(services.ErrValidation, "omdb", "decode",
			fmt.Sprintf("%s: rating %q", title, r.IMDbRating), err)
	}
	poster := strings.TrimSpace(r.Poster)
	if poster == notAvailable {
		poster = ""
	}
	return Metadata{Title: title, Year: year, Rating: rating, PosterURL: poster}, nil
}

// ParseYear reads the leading four-digit year of OMDb values such as "2010",
// "2010–2013" or "2019–".
func ParseYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 4 {
		return 0, fmt.Errorf("year %q too short", raw)
	}
	year, err := strconv.Atoi(raw[:4])
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("year %q not numeric", raw)
	}
	return year, nil
}

// ParseRating reads an IMDb rating in [0, 10]. "N/A" is rejected.
func ParseRating(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == notAvailable {
		return 0, fmt.Errorf("rating unavailable")
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("rating %q not numeric", raw)
	}
	if math.IsNaN(rating) || rating < 0 || rating > 10 {
		return 0, fmt.Errorf("rating %v out of range", rating)
	}
	return rating, nil
}
