package omdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"strings"
	"testing"
	"time"

	"marquee/internal/omdb"
	"marquee/internal/services"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := omdb.New(" ", "https://example.com")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("apikey") != "key" {
			t.Errorf("expected apikey query parameter, got %q", r.URL.RawQuery)
		}
		if query.Get("t") != "Inception" {
			t.Errorf("expected t=Inception, got %q", query.Get("t"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Title":"Inception","Year":"2010","imdbRating":"8.8","Poster":"https://img.example/p.jpg","Response":"True"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got, err := client.Lookup(context.Background(), "  Inception ")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	want := omdb.Metadata{Title: "Inception", Year: 2010, Rating: 8.8, PosterURL: "https://img.example/p.jpg"}
	if got != want {
		t.Fatalf("Lookup = %#v, want %#v", got, want)
	}
}

func TestLookupSeriesYearAndMissingPoster(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"Title":"Dark","Year":"2017–2020","imdbRating":"8.7","Poster":"N/A","Response":"True"}`)
	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got, err := client.Lookup(context.Background(), "Dark")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got.Year != 2017 || got.PosterURL != "" {
		t.Fatalf("unexpected metadata %#v", got)
	}
}

func TestLookupErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		marker error
	}{
		{"movie not found", http.StatusOK, `{"Response":"False","Error":"Movie not found!"}`, services.ErrNotFound},
		{"http 404", http.StatusNotFound, `{}`, services.ErrNotFound},
		{"invalid key", http.StatusUnauthorized, `{"Response":"False","Error":"Invalid API key!"}`, services.ErrConfiguration},
		{"server error", http.StatusInternalServerError, `oops`, services.ErrNetwork},
		{"malformed body", http.StatusOK, `<html>`, services.ErrNetwork},
		{"rating unavailable", http.StatusOK, `{"Title":"Obscure","Year":"1931","imdbRating":"N/A","Response":"True"}`, services.ErrValidation},
		{"year unavailable", http.StatusOK, `{"Title":"Obscure","Year":"N/A","imdbRating":"5.0","Response":"True"}`, services.ErrValidation},
		{"limit reached", http.StatusOK, `{"Response":"False","Error":"Request limit reached!"}`, services.ErrNetwork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.status, tc.body)
			client, err := omdb.New("key", server.URL)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			_, err = client.Lookup(context.Background(), "Whatever")
			if !errors.Is(err, tc.marker) {
				t.Fatalf("expected %v, got %v", tc.marker, err)
			}
		})
	}
}

func TestLookupUnreachableRedactsKey(t *testing.T) {
	server := newServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	client, err := omdb.New("secret-key", url, omdb.WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Lookup(context.Background(), "Alien")
	if !errors.Is(err, services.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("api key leaked into error: %v", err)
	}
	if !strings.Contains(err.Error(), "apikey=REDACTED") {
		t.Fatalf("expected redacted apikey parameter, got %v", err)
	}
}

func TestLookupRedactionKeepsShortKeyQueryIntact(t *testing.T) {
	server := newServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	client, err := omdb.New("api", url, omdb.WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Lookup(context.Background(), "Alien")
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if !strings.Contains(err.Error(), "apikey=REDACTED&t=Alien") {
		t.Fatalf("expected only the key value to be masked, got %v", err)
	}
	var uerr *neturl.Error
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *url.Error in chain, got %T", err)
	}
}

func TestLookupEmptyTitle(t *testing.T) {
	client, err := omdb.New("key", "https://example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Lookup(context.Background(), "  "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLookupHonoursContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL, omdb.WithHTTPClient(&http.Client{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Lookup(ctx, "Alien")
	if !errors.Is(err, services.ErrNetwork) {
		t.Fatalf("expected network error on timeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded in chain, got %v", err)
	}
}

func TestLookupCanceledContextKeepsCause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Lookup(ctx, "Alien"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestParseYear(t *testing.T) {
	cases := map[string]int{"2010": 2010, "2010–2013": 2010, " 1999 ": 1999, "2019–": 2019}
	for raw, want := range cases {
		got, err := omdb.ParseYear(raw)
		if err != nil || got != want {
			t.Errorf("ParseYear(%q) = %d, %v; want %d", raw, got, err, want)
		}
	}
	for _, raw := range []string{"", "N/A", "19x9"} {
		if _, err := omdb.ParseYear(raw); err == nil {
			t.Errorf("ParseYear(%q) expected error", raw)
		}
	}
}
