package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
	"marquee/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	omdb       *testsupport.OMDbServer
	configPath string
	homeDir    string
}

var stubTitles = []testsupport.OMDbTitle{
	{Title: "Inception", Year: "2010", Rating: "8.8", Poster: "https://img.example/inception.jpg"},
	{Title: "The Matrix", Year: "1999", Rating: "8.7", Poster: "https://img.example/matrix.jpg"},
	{Title: "Dark", Year: "2017–2020", Rating: "8.7", Poster: "N/A"},
	{Title: "Casablanca", Year: "1942", Rating: "8.5", Poster: "N/A"},
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	homeDir := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("API_KEY", "")

	server := testsupport.NewOMDbServer(t, "test-key", stubTitles...)
	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithOMDb(server.URL+"/", "test-key")}, opts...)...)

	configPath := filepath.Join(homeDir, ".config", "marquee", "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, omdb: server, configPath: configPath, homeDir: homeDir}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func (env *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, args, env.configPath, "")
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd, ctx := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	if closeErr := ctx.close(); closeErr != nil {
		t.Fatalf("close store: %v", closeErr)
	}
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
