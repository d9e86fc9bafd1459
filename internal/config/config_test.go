package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
	"marquee/internal/services"
)

func TestLoadDefaultConfigUsesEnvOMDbKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "marquee")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.WebsiteDir != filepath.Join(wantData, "website") {
		t.Fatalf("unexpected website dir: %q", cfg.Paths.WebsiteDir)
	}
	if cfg.DatabasePath() != filepath.Join(wantData, "movies.db") {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
	if cfg.OMDb.APIKey != "test-key" {
		t.Fatalf("expected OMDb key from env, got %q", cfg.OMDb.APIKey)
	}
	if cfg.OMDb.BaseURL != config.Default().OMDb.BaseURL {
		t.Fatalf("unexpected OMDb base url: %q", cfg.OMDb.BaseURL)
	}
	if cfg.OMDbTimeout().Seconds() != 5 {
		t.Fatalf("unexpected timeout: %v", cfg.OMDbTimeout())
	}
	if err := cfg.RequireOMDb(); err != nil {
		t.Fatalf("RequireOMDb: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.Paths.DataDir, cfg.LogDir(), cfg.Paths.WebsiteDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLegacyAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("API_KEY", "legacy")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OMDb.APIKey != "legacy" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.OMDb.APIKey)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "marquee.toml")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		OMDb struct {
			APIKey         string `toml:"api_key"`
			BaseURL        string `toml:"base_url"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"omdb"`
		Website struct {
			Name string `toml:"name"`
		} `toml:"website"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.OMDb.APIKey = "abc123"
	custom.OMDb.BaseURL = "https://example.com/omdb/"
	custom.OMDb.TimeoutSeconds = 12
	custom.Website.Name = "Ada"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.OMDb.APIKey != "abc123" {
		t.Fatalf("expected OMDb key from file, got %q", cfg.OMDb.APIKey)
	}
	if cfg.OMDb.BaseURL != "https://example.com/omdb/" {
		t.Fatalf("expected OMDb base url override, got %q", cfg.OMDb.BaseURL)
	}
	if cfg.OMDb.TimeoutSeconds != 12 {
		t.Fatalf("expected timeout 12, got %d", cfg.OMDb.TimeoutSeconds)
	}
	if cfg.Paths.DataDir != filepath.Join(tempDir, "data") {
		t.Fatalf("unexpected data dir %q", cfg.Paths.DataDir)
	}
	if cfg.Website.Name != "Ada" {
		t.Fatalf("expected website name Ada, got %q", cfg.Website.Name)
	}
}

func TestConfigFileKeyWinsOverEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(configPath, []byte("[omdb]\napi_key = \"file-key\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("OMDB_API_KEY", "env-key")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OMDb.APIKey != "file-key" {
		t.Fatalf("expected file key to win, got %q", cfg.OMDb.APIKey)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(configPath, []byte("[omdb]\napikey = \"typo\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestRequireOMDbWithoutKey(t *testing.T) {
	cfg := config.Default()
	cfg.OMDb.APIKey = "  "
	err := cfg.RequireOMDb()
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
	if !strings.Contains(err.Error(), "OMDB_API_KEY") {
		t.Fatalf("expected hint about env var, got %v", err)
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "your_omdb_api_key_here") {
		t.Fatalf("sample config missing placeholder OMDb key: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.DataDir, "marquee") {
		t.Fatalf("expected data dir to contain marquee, got %q", cfg.Paths.DataDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.OMDb.BaseURL = "ftp://example.com"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-http base url")
	}

	cfg = config.Default()
	cfg.OMDb.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Website.TemplatePath = t.TempDir()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when template path is a directory")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
