package website

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/fileutil"
	"marquee/internal/logging"
	"marquee/internal/services"
	"marquee/internal/textutil"
)

// Lister supplies the movies to publish.
type Lister interface {
	List(ctx context.Context) ([]catalog.Movie, error)
}

// Generator writes the rendered collection to disk.
type Generator struct {
	dir      string
	store    Lister
	renderer *Renderer
	logger   *slog.Logger
}

// Result describes one generated site.
type Result struct {
	PagePath       string `json:"page_path"`
	StylesheetPath string `json:"stylesheet_path"`
	MovieCount     int    `json:"movie_count"`
}

// NewGenerator builds a generator writing into dir. A nil logger discards
// output.
func NewGenerator(dir string, store Lister, renderer *Renderer, logger *slog.Logger) (*Generator, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "website", "new generator", "output directory required", nil)
	}
	if store == nil {
		return nil, services.Wrap(services.ErrConfiguration, "website", "new generator", "movie source required", nil)
	}
	if renderer == nil {
		renderer = &Renderer{tmpl: defaultRenderer}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{dir: dir, store: store, renderer: renderer, logger: logger}, nil
}

// Generate renders every stored movie under the heading for name and writes
// the page and stylesheet. Existing files are replaced whole.
func (g *Generator) Generate(ctx context.Context, name string) (Result, error) {
	name = textutil.CollapseSpace(name)
	fileName := textutil.SanitizeFileName(name)
	if fileName == "" {
		return Result{}, services.Wrap(services.ErrValidation, "website", "generate", "site name must not be empty", nil)
	}

	movies, err := g.store.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list movies: %w", err)
	}
	content, err := g.renderer.Render(Page{Title: CollectionTitle(name), Movies: movies})
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create website directory: %w", err)
	}
	result := Result{
		PagePath:       filepath.Join(g.dir, fileName+".html"),
		StylesheetPath: filepath.Join(g.dir, StylesheetName),
		MovieCount:     len(movies),
	}
	if err := fileutil.WriteFileAtomic(result.PagePath, content, 0o644); err != nil {
		return Result{}, fmt.Errorf("write page: %w", err)
	}
	wrote, err := fileutil.WriteFileIfChanged(result.StylesheetPath, stylesheet, 0o644)
	if err != nil {
		return Result{}, fmt.Errorf("write stylesheet: %w", err)
	}

	g.logger.InfoContext(ctx, "website generated",
		logging.String("page", result.PagePath),
		logging.Int("movies", result.MovieCount),
		logging.Bool("stylesheet_written", wrote),
	)
	return result, nil
}
