// Package main hosts the marquee CLI entrypoint and command graph.
//
// Each subcommand maps onto one catalog, OMDb, or website operation through
// the shared operations type; the interactive "shell" command drives the
// same operations from a menu dispatch table. Configuration, the catalog
// store, and the file logger are resolved lazily by commandContext so
// commands that need none of them (config init) stay cheap.
package main
