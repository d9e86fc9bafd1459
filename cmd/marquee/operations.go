package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/logging"
	"marquee/internal/omdb"
	"marquee/internal/services"
	"marquee/internal/website"
)

const maxSuggestions = 3

// operations is the typed surface shared by the cobra commands and the shell
// dispatch table.
type operations struct {
	store    *catalog.Store
	lookup   func() (omdb.Looker, error)
	logger   *slog.Logger
	rng      *rand.Rand
	siteDir  string
	template string
	siteName string
}

func (o *operations) list(ctx context.Context) ([]catalog.Movie, error) {
	return o.store.List(ctx)
}

// add looks title up on OMDb and stores the result. Titles already in the
// collection, compared case-insensitively, are rejected before any request is
// made; the canonical OMDb title is checked again before inserting.
func (o *operations) add(ctx context.Context, title string) (catalog.Movie, error) {
	title = catalog.NormalizeTitle(title)
	if title == "" {
		return catalog.Movie{}, services.Wrap(services.ErrValidation, "cli", "add", "title is required", nil)
	}
	if err := o.rejectExisting(ctx, title); err != nil {
		return catalog.Movie{}, err
	}

	meta, err := o.fetch(ctx, title)
	if err != nil {
		return catalog.Movie{}, err
	}
	if err := o.rejectExisting(ctx, meta.Title); err != nil {
		return catalog.Movie{}, err
	}
	movie, err := o.store.Add(ctx, catalog.Movie{
		Title:     meta.Title,
		Year:      meta.Year,
		Rating:    meta.Rating,
		PosterURL: meta.PosterURL,
	})
	if err != nil {
		return catalog.Movie{}, err
	}
	o.logger.InfoContext(ctx, "movie added",
		logging.String(logging.FieldTitle, movie.Title),
		logging.Int("year", movie.Year),
		logging.Float64("rating", movie.Rating),
		logging.String("source", "omdb"),
	)
	return movie, nil
}

func (o *operations) rejectExisting(ctx context.Context, title string) error {
	existing, err := o.store.FindFold(ctx, title)
	switch {
	case err == nil:
		return services.Wrap(services.ErrDuplicate, "cli", "add",
			fmt.Sprintf("%q is already in the collection", existing.Title), nil)
	case errors.Is(err, services.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (o *operations) addManual(ctx context.Context, movie catalog.Movie) (catalog.Movie, error) {
	added, err := o.store.Add(ctx, movie)
	if err != nil {
		return catalog.Movie{}, err
	}
	o.logger.InfoContext(ctx, "movie added",
		logging.String(logging.FieldTitle, added.Title),
		logging.Int("year", added.Year),
		logging.Float64("rating", added.Rating),
		logging.String("source", "manual"),
	)
	return added, nil
}

func (o *operations) fetch(ctx context.Context, title string) (omdb.Metadata, error) {
	client, err := o.lookup()
	if err != nil {
		return omdb.Metadata{}, err
	}
	meta, err := client.Lookup(ctx, title)
	if err != nil {
		o.logger.WarnContext(ctx, "omdb lookup failed",
			logging.String(logging.FieldTitle, title),
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err),
		)
		return omdb.Metadata{}, err
	}
	o.logger.DebugContext(ctx, "omdb lookup",
		logging.String(logging.FieldTitle, meta.Title),
		logging.Int("year", meta.Year),
	)
	return meta, nil
}

func (o *operations) update(ctx context.Context, title string, rating float64) (catalog.Movie, error) {
	movie, err := o.store.Update(ctx, title, rating)
	if err != nil {
		return catalog.Movie{}, o.withSuggestions(ctx, title, err)
	}
	o.logger.InfoContext(ctx, "rating updated",
		logging.String(logging.FieldTitle, movie.Title),
		logging.Float64("rating", movie.Rating),
	)
	return movie, nil
}

func (o *operations) remove(ctx context.Context, title string) error {
	if err := o.store.Delete(ctx, title); err != nil {
		return o.withSuggestions(ctx, title, err)
	}
	o.logger.InfoContext(ctx, "movie deleted", logging.String(logging.FieldTitle, catalog.NormalizeTitle(title)))
	return nil
}

func (o *operations) search(ctx context.Context, fragment string) ([]catalog.Movie, error) {
	return o.store.Search(ctx, fragment)
}

func (o *operations) sorted(ctx context.Context) ([]catalog.Movie, error) {
	return o.store.SortedByRating(ctx)
}

func (o *operations) stats(ctx context.Context) (catalog.Stats, error) {
	return o.store.Stats(ctx)
}

func (o *operations) random(ctx context.Context) (catalog.Movie, error) {
	return o.store.Random(ctx, o.rng)
}

func (o *operations) generate(ctx context.Context, name string) (website.Result, error) {
	if strings.TrimSpace(name) == "" {
		name = o.siteName
	}
	renderer, err := website.NewRenderer(o.template)
	if err != nil {
		return website.Result{}, err
	}
	generator, err := website.NewGenerator(o.siteDir, o.store, renderer, o.logger)
	if err != nil {
		return website.Result{}, err
	}
	return generator.Generate(ctx, name)
}

// withSuggestions appends close title matches to not-found errors.
func (o *operations) withSuggestions(ctx context.Context, title string, err error) error {
	if !errors.Is(err, services.ErrNotFound) {
		return err
	}
	suggestions, suggestErr := o.store.Suggest(ctx, title, maxSuggestions)
	if suggestErr != nil || len(suggestions) == 0 {
		return err
	}
	quoted := make([]string, len(suggestions))
	for i, suggestion := range suggestions {
		quoted[i] = strconv.Quote(suggestion)
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(quoted, ", "))
}

// parseRating converts user input to a rating, reporting services.ErrValidation
// for non-numeric or out-of-range values.
func parseRating(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, services.Wrap(services.ErrValidation, "cli", "parse rating",
			fmt.Sprintf("%q is not a number", raw), nil)
	}
	if err := catalog.ValidateRating(value); err != nil {
		return 0, err
	}
	return value, nil
}

// parseYear converts user input to a positive year.
func parseYear(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, services.Wrap(services.ErrValidation, "cli", "parse year",
			fmt.Sprintf("%q is not a valid year", raw), nil)
	}
	return value, nil
}
