package website

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"marquee/internal/catalog"
	"marquee/internal/services"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

//go:embed static/style.css
var stylesheet []byte

// StylesheetName is the file written beside every generated page.
const StylesheetName = "style.css"

// Page is the data handed to the page template.
type Page struct {
	Title  string
	Movies []catalog.Movie
}

type pageData struct {
	Title      string
	Stylesheet string
	Movies     []catalog.Movie
}

var funcs = template.FuncMap{
	"rating": func(value float64) string {
		return strconv.FormatFloat(value, 'f', 1, 64)
	},
}

// Renderer turns a Page into HTML using a parsed template.
type Renderer struct {
	tmpl *template.Template
}

var defaultRenderer = template.Must(
	template.New("index.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/index.html.tmpl"),
)

// NewRenderer returns a renderer using the template at overridePath, or the
// built-in template when overridePath is empty.
func NewRenderer(overridePath string) (*Renderer, error) {
	if overridePath == "" {
		return &Renderer{tmpl: defaultRenderer}, nil
	}
	content, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "website", "load template", overridePath, err)
	}
	tmpl, err := template.New("override").Funcs(funcs).Parse(string(content))
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "website", "parse template", overridePath, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template for page.
func (r *Renderer) Render(page Page) ([]byte, error) {
	movies := page.Movies
	if movies == nil {
		movies = []catalog.Movie{}
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, pageData{
		Title:      page.Title,
		Stylesheet: StylesheetName,
		Movies:     movies,
	}); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Render renders page with the built-in template.
func Render(page Page) ([]byte, error) {
	return (&Renderer{tmpl: defaultRenderer}).Render(page)
}

// Stylesheet returns the bundled stylesheet.
func Stylesheet() []byte {
	return append([]byte(nil), stylesheet...)
}

// CollectionTitle returns the page heading for a collection owner.
func CollectionTitle(name string) string {
	return "Movie Database of " + name
}
