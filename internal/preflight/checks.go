package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"marquee/internal/catalog"
	"marquee/internal/omdb"
	"marquee/internal/services"
)

// HealthChecker reports catalog database health.
type HealthChecker interface {
	Health(ctx context.Context) (catalog.Health, error)
}

// CheckOMDb verifies that the OMDb API is reachable and the key is accepted.
// It uses a single attempt bounded by timeout.
func CheckOMDb(ctx context.Context, baseURL, apiKey string, timeout time.Duration) Result {
	const name = "OMDb API"

	if strings.TrimSpace(baseURL) == "" {
		return Result{Name: name, Detail: "missing url"}
	}
	if strings.TrimSpace(apiKey) == "" {
		return Result{Name: name, Detail: "missing api key (set OMDB_API_KEY)"}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := omdb.New(apiKey, baseURL, omdb.WithTimeout(timeout))
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("client setup failed (%v)", err)}
	}
	if err := client.Ping(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeOMDbError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}

func summarizeOMDbError(err error) string {
	switch {
	case errors.Is(err, services.ErrConfiguration):
		return "auth failed (invalid api key)"
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return "timed out"
	default:
		return fmt.Sprintf("unreachable (%v)", err)
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCatalog runs the catalog integrity check.
func CheckCatalog(ctx context.Context, store HealthChecker) Result {
	const name = "Catalog database"

	if store == nil {
		return Result{Name: name, Detail: "not opened"}
	}
	health, err := store.Health(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", health.DBPath, err)}
	}
	switch {
	case !health.DatabaseExists:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: missing)", health.DBPath)}
	case health.Error != "":
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", health.DBPath, health.Error)}
	case !health.IntegrityCheck:
		return Result{Name: name, Detail: fmt.Sprintf("%s (integrity check failed)", health.DBPath)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d movies, schema v%d)", health.DBPath, health.TotalMovies, health.SchemaVersion)}
}
