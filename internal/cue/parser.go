package cue

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Options controls a single parse invocation.
type Options struct {
	// Offset is a scalar correction in HH:MM:SS.fraction form added uniformly
	// to every timestamp in the sheet. Empty means zero.
	Offset string
}

type parseState int

const (
	stateDisc parseState = iota
	stateTrack
)

type parser struct {
	sheet  *Sheet
	state  parseState
	offset time.Duration
}

// Parse consumes a Cue Sheet from r and returns the finished disc record.
// Parser state is local to the invocation; concurrent parses must each call
// Parse independently. The stream is read strictly forward, one directive per
// line, and terminates at EOF or the first blank line. Unrecognized lines are
// ignored; only a malformed timestamp is fatal.
func Parse(r io.Reader, opts Options) (*Sheet, error) {
	offset, err := parseOffset(opts.Offset)
	if err != nil {
		return nil, err
	}

	p := &parser{
		sheet:  &Sheet{},
		state:  stateDisc,
		offset: offset,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		if err := p.handleLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cue sheet: %w", err)
	}

	inferEnds(p.sheet.Tracks)
	disambiguateTitles(p.sheet.Tracks)
	return p.sheet, nil
}

func (p *parser) handleLine(line string) error {
	if p.state == stateDisc {
		if p.fileDirective(line) {
			p.state = stateTrack
			return nil
		}
		p.commentOrGeneric(line)
		return nil
	}

	if p.trackDirective(line) {
		return nil
	}
	handled, err := p.indexDirective(line)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	p.commentOrGeneric(line)
	return nil
}

// fileDirective handles `FILE "name" WAVE`: the trailing format token is
// discarded and the rest becomes the disc's file value. Firing this directive
// ends disc-scope parsing.
func (p *parser) fileDirective(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "FILE" {
		return false
	}
	return p.storeTag(p.target(), dropLastField(line))
}

// trackDirective handles `TRACK <ordinal> AUDIO`: a new track context is
// pushed and the ordinal stored, dropping the trailing track-type token.
func (p *parser) trackDirective(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "TRACK" {
		return false
	}
	p.sheet.Tracks = append(p.sheet.Tracks, &Track{})
	return p.storeTag(p.currentTrack(), dropLastField(line))
}

// indexDirective handles `INDEX <number> <timestamp>`. Index 01 is the
// primary index and becomes the current track's start. Any other index
// (conventionally 00, the pregap) marks the end of the previous track, which
// requires at least two tracks; otherwise the line is dropped. Timestamp
// conversion failures are the one fatal parse condition.
func (p *parser) indexDirective(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "INDEX" {
		return false, nil
	}
	timestamp, err := normalizeTimestamp(fields[2], p.offset)
	if err != nil {
		return true, err
	}
	tracks := p.sheet.Tracks
	if fields[1] == "01" {
		if track := p.currentTrack(); track != nil {
			track.set("start", timestamp)
		}
		return true, nil
	}
	if len(tracks) >= 2 {
		tracks[len(tracks)-2].set("end", timestamp)
	}
	return true, nil
}

// commentOrGeneric routes `REM key value` and bare `key value` lines into the
// active record. A REM whose remainder is a single token falls back to the
// generic form, storing it under "rem". Lines that cannot be split at all are
// ignored.
func (p *parser) commentOrGeneric(line string) {
	if key, rest, ok := splitTag(line); ok && key == "REM" {
		if p.storeTag(p.target(), rest) {
			return
		}
	}
	p.storeTag(p.target(), line)
}

// target returns the record generic directives apply to: the current track
// when one exists in track scope, otherwise the disc.
func (p *parser) target() tagTarget {
	if p.state == stateTrack {
		if track := p.currentTrack(); track != nil {
			return track
		}
	}
	return p.sheet
}

func (p *parser) currentTrack() *Track {
	if len(p.sheet.Tracks) == 0 {
		return nil
	}
	return p.sheet.Tracks[len(p.sheet.Tracks)-1]
}

type tagTarget interface {
	set(key, value string)
}

// storeTag splits line into a key and value, lowercases the key, strips one
// layer of surrounding quotes from the value, and stores the pair. Returns
// false when the line does not split into two parts.
func (p *parser) storeTag(target tagTarget, line string) bool {
	key, value, ok := splitTag(line)
	if !ok || target == nil {
		return false
	}
	target.set(strings.ToLower(key), trimQuotes(value))
	return true
}

// splitTag splits a line at the first whitespace run into a key and the
// remainder with its internal spacing preserved.
func splitTag(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return "", "", false
	}
	key = line[:idx]
	value = strings.TrimSpace(line[idx+1:])
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

// dropLastField removes the final whitespace-delimited token from line,
// preserving the spacing of what remains.
func dropLastField(line string) string {
	line = strings.TrimRight(line, " \t")
	idx := strings.LastIndexAny(line, " \t")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[:idx])
}

// trimQuotes strips a single layer of matching surrounding single or double
// quotes.
func trimQuotes(value string) string {
	if len(value) >= 2 {
		first := value[0]
		if (first == '"' || first == '\'') && value[len(value)-1] == first {
			return value[1 : len(value)-1]
		}
	}
	return value
}
