package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// OMDbTitle is a canned OMDb answer served by OMDbServer.
type OMDbTitle struct {
	Title  string
	Year   string
	Rating string
	Poster string
}

// OMDbServer is an httptest server answering OMDb title lookups from a fixed
// set of titles.
type OMDbServer struct {
	*httptest.Server
	Key      string
	requests atomic.Int64
}

// Requests returns how many lookups the server has answered.
func (s *OMDbServer) Requests() int {
	return int(s.requests.Load())
}

// NewOMDbServer starts a stub OMDb endpoint. Lookups with the wrong apikey get
// a 401 with OMDb's error body; unknown titles get Response "False".
func NewOMDbServer(t testing.TB, key string, titles ...OMDbTitle) *OMDbServer {
	t.Helper()

	byTitle := make(map[string]OMDbTitle, len(titles))
	for _, title := range titles {
		byTitle[strings.ToLower(title.Title)] = title
	}

	stub := &OMDbServer{Key: key}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		query := r.URL.Query()
		if query.Get("apikey") != key {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Invalid API key!"})
			return
		}
		match, ok := byTitle[strings.ToLower(strings.TrimSpace(query.Get("t")))]
		if !ok {
			_ = json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Movie not found!"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"Title":      match.Title,
			"Year":       match.Year,
			"imdbRating": match.Rating,
			"Poster":     match.Poster,
			"Response":   "True",
		})
	}))
	t.Cleanup(stub.Close)
	return stub
}
