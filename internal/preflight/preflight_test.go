package preflight

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"marquee/internal/catalog"
	"marquee/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOMDb_OK(t *testing.T) {
	srv := testsupport.NewOMDbServer(t, "good-key", testsupport.OMDbTitle{Title: "Casablanca", Year: "1942", Rating: "8.5"})

	result := CheckOMDb(context.Background(), srv.URL, "good-key", time.Second)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckOMDb_BadKey(t *testing.T) {
	srv := testsupport.NewOMDbServer(t, "good-key")

	result := CheckOMDb(context.Background(), srv.URL, "bad-key", time.Second)
	if result.Passed {
		t.Fatal("expected failure with bad key")
	}
	if !strings.Contains(result.Detail, "invalid api key") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckOMDb_SlowServerTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	result := CheckOMDb(context.Background(), srv.URL, "key", 100*time.Millisecond)
	if result.Passed {
		t.Fatal("expected failure against a server that never answers")
	}
	if result.Detail != "timed out" {
		t.Fatalf("expected timed out detail, got %q", result.Detail)
	}
}

func TestCheckOMDb_MissingKey(t *testing.T) {
	result := CheckOMDb(context.Background(), "https://example.com", " ", time.Second)
	if result.Passed || !strings.Contains(result.Detail, "missing api key") {
		t.Fatalf("unexpected result %#v", result)
	}
}

type fakeHealth struct {
	health catalog.Health
	err    error
}

func (f fakeHealth) Health(context.Context) (catalog.Health, error) {
	return f.health, f.err
}

func TestCheckCatalog(t *testing.T) {
	cases := []struct {
		name   string
		store  HealthChecker
		passed bool
	}{
		{"nil store", nil, false},
		{"healthy", fakeHealth{health: catalog.Health{DBPath: "x.db", DatabaseExists: true, IntegrityCheck: true, TotalMovies: 3, SchemaVersion: 1}}, true},
		{"missing", fakeHealth{health: catalog.Health{DBPath: "x.db"}}, false},
		{"corrupt", fakeHealth{health: catalog.Health{DBPath: "x.db", DatabaseExists: true, Error: "malformed"}}, false},
		{"error", fakeHealth{err: errors.New("boom")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CheckCatalog(context.Background(), tc.store)
			if result.Passed != tc.passed {
				t.Fatalf("Passed = %v, want %v (%s)", result.Passed, tc.passed, result.Detail)
			}
		})
	}
}

func TestRunAll(t *testing.T) {
	srv := testsupport.NewOMDbServer(t, "key")
	cfg := testsupport.NewConfig(t, testsupport.WithOMDb(srv.URL, "key"))
	store := testsupport.MustOpenStore(t, cfg)

	results := RunAll(context.Background(), cfg, store)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass: %#v", results)
	}

	if got := RunAll(context.Background(), nil, nil); got != nil {
		t.Fatalf("expected nil for nil config, got %#v", got)
	}
}
