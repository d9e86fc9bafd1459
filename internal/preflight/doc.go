// Package preflight provides readiness checks for the filesystem paths and
// the OMDb endpoint that marquee depends on.
//
// The "marquee status" command runs RunAll and renders each Result. Checks
// never return errors; failures are reported through Result.Detail so one
// broken dependency does not hide the others.
package preflight
