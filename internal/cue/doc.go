// Package cue parses Cue Sheets into disc and track records suitable for
// cutting a single media file into per-track files.
//
// The parser is a single-pass line scanner with two scopes: disc-level
// directives up to the FILE tag, then track-level directives for the rest of
// the stream. It is deliberately permissive — unrecognized lines are skipped,
// not rejected — with one exception: a timestamp that cannot be parsed aborts
// the parse, because a sheet with broken timing cannot be trusted for cutting.
//
// Key types:
//   - Sheet: disc-level metadata plus the ordered track list
//   - Track: per-track metadata with absolute start/end offsets
//
// Primary entry point:
//   - Parse: consumes a text stream and returns the finished Sheet
package cue
