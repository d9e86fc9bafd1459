package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.OMDb.APIKey = "test"
	cfgVal.OMDb.BaseURL = "http://127.0.0.1:0/"
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.WebsiteDir = filepath.Join(base, "website")
	cfgVal.Website.Name = "Tester"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithOMDb points the config at a stub OMDb endpoint with the given key.
func WithOMDb(baseURL, key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.OMDb.BaseURL = baseURL
		b.cfg.OMDb.APIKey = key
	}
}

// WithWebsiteName overrides the collection name used for generated pages.
func WithWebsiteName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Website.Name = name
	}
}

// WithTemplate sets a page template override path.
func WithTemplate(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Website.TemplatePath = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
