// Package ffmpeg builds and runs the ffmpeg invocations that cut one track
// out of the source media file.
//
// Argument construction is separated from process execution so the mapping
// from sheet metadata to -metadata flags can be tested without ffmpeg
// installed.
package ffmpeg
