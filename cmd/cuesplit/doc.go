// Command cuesplit parses Cue Sheets and cuts the referenced media file into
// per-track files with ffmpeg.
package main
