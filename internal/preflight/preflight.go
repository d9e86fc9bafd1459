package preflight

import (
	"context"

	"marquee/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every preflight check for the given config. The catalog
// check is skipped when store is nil.
func RunAll(ctx context.Context, cfg *config.Config, store HealthChecker) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Website directory", cfg.Paths.WebsiteDir),
	}
	if store != nil {
		results = append(results, CheckCatalog(ctx, store))
	}
	results = append(results, CheckOMDb(ctx, cfg.OMDb.BaseURL, cfg.OMDb.APIKey, cfg.OMDbTimeout()))
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
