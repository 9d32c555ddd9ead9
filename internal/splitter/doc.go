// Package splitter orchestrates a split run: decode the sheet, parse it,
// inspect the source media, cut every track with ffmpeg, and record the run
// in history. It owns the output-directory lock so concurrent runs cannot
// write into the same place.
package splitter
