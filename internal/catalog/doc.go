// Package catalog persists the movie collection in SQLite.
//
// Store owns the database connection and an exclusive file lock beside the
// database, so exactly one process reads and writes the collection at a time.
// Titles are the logical key: Add rejects a title already present with
// services.ErrDuplicate, and Update/Delete/Get report services.ErrNotFound for
// unknown titles. Every operation commits on its own; there are no
// long-running transactions.
//
// Schema changes bump schemaVersion in schema.go. There is no migration path;
// a mismatched database must be moved aside.
package catalog
