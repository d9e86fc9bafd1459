// Package omdb wraps the Open Movie Database title lookup used when adding
// movies.
//
// Lookup issues a single GET per call with no retries or caching. Responses
// are decoded into a typed schema and validated before they leave the
// package: unknown titles map to services.ErrNotFound, unusable fields (a
// missing rating) to services.ErrValidation, and transport or status
// failures to services.ErrNetwork.
package omdb
