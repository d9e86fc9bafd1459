// Package services defines the shared error taxonomy and context helpers used
// by the catalog store, the OMDb client, the site generator, and the CLI.
//
// Key responsibilities:
//   - Structured error markers (validation, duplicate, not found, network,
//     configuration) plus the Wrap helper that attaches component and
//     operation context while keeping the marker visible to errors.Is.
//   - Context helpers that stamp request identifiers and command names so
//     log lines from one CLI invocation can be correlated.
//
// Callers classify failures with errors.Is against the exported markers and
// never by matching message text.
package services
