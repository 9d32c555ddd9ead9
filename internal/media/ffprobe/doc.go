// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The split workflow uses it to confirm the media file a sheet references
// actually carries audio and to report its duration before cutting.
package ffprobe
