package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"cuesplit/internal/cue"
)

// Cutter runs ffmpeg to extract a single track from a source file.
type Cutter struct {
	// Binary is the ffmpeg executable; empty means "ffmpeg".
	Binary string
}

// Request describes one track cut.
type Request struct {
	Source string
	Dest   string
	Sheet  *cue.Sheet
	Track  *cue.Track
}

// Args returns the full ffmpeg argument list for the request, excluding the
// binary itself. The track's end is omitted when empty so ffmpeg cuts to
// end-of-media.
func (c *Cutter) Args(req Request) []string {
	args := []string{"-y", "-ss", req.Track.Start}
	if req.Track.End != "" {
		args = append(args, "-to", req.Track.End)
	}
	args = append(args, "-i", req.Source)
	for _, pair := range metadataPairs(req.Sheet, req.Track) {
		args = append(args, "-metadata", pair)
	}
	return append(args, req.Dest)
}

// Cut executes ffmpeg for the request.
func (c *Cutter) Cut(ctx context.Context, req Request) error {
	binary := strings.TrimSpace(c.Binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, binary, c.Args(req)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut track %s: %w: %s", req.Track.Number, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// metadataPairs assembles the track's tag set: the track's own keys, plus
// disc-level keys the track does not define itself. The ordinal becomes
// track=<n>/<total> and the disc title is carried as the album. Pairs are
// sorted for a stable command line.
func metadataPairs(sheet *cue.Sheet, track *cue.Track) []string {
	tags := track.Tags()
	for key, value := range sheet.Tags() {
		if _, ok := tags[key]; !ok {
			tags[key] = value
		}
	}
	tags["track"] = fmt.Sprintf("%s/%d", ordinal(track.Number), len(sheet.Tracks))
	tags["album"] = sheet.Title

	pairs := make([]string, 0, len(tags))
	for key, value := range tags {
		pairs = append(pairs, key+"="+value)
	}
	sort.Strings(pairs)
	return pairs
}

// ordinal strips leading zeros from the sheet-supplied track number; a
// non-numeric ordinal is passed through untouched.
func ordinal(number string) string {
	if parsed, err := strconv.Atoi(strings.TrimSpace(number)); err == nil {
		return strconv.Itoa(parsed)
	}
	return number
}
