package cue

// Sheet is the disc-level record produced by a parse: the referenced media
// file, well-known disc metadata, arbitrary extra directives, and the tracks
// in the order their TRACK directives appeared.
type Sheet struct {
	File      string
	Title     string
	Performer string
	Extra     map[string]string
	Tracks    []*Track
}

// Track is one track of the disc. Number is the ordinal exactly as supplied
// by the sheet (1-based, never recomputed). Start is always present once
// parsing completes; End is empty for an open-ended cut to end-of-media.
type Track struct {
	Number    string
	Title     string
	Performer string
	Start     string
	End       string
	Extra     map[string]string
}

// Get returns the value stored under key, or the empty string when the key
// is absent. Lookups never fail.
func (s *Sheet) Get(key string) string {
	switch key {
	case "file":
		return s.File
	case "title":
		return s.Title
	case "performer":
		return s.Performer
	default:
		return s.Extra[key]
	}
}

// Tags returns the disc metadata as key/value pairs: the well-known fields
// that are set, plus every extra directive. The referenced file name is
// structural, not metadata, and is excluded.
func (s *Sheet) Tags() map[string]string {
	tags := make(map[string]string, len(s.Extra)+2)
	for key, value := range s.Extra {
		tags[key] = value
	}
	if s.Title != "" {
		tags["title"] = s.Title
	}
	if s.Performer != "" {
		tags["performer"] = s.Performer
	}
	return tags
}

func (s *Sheet) set(key, value string) {
	switch key {
	case "file":
		s.File = value
	case "title":
		s.Title = value
	case "performer":
		s.Performer = value
	default:
		if s.Extra == nil {
			s.Extra = make(map[string]string)
		}
		s.Extra[key] = value
	}
}

// Get returns the value stored under key, or the empty string when the key
// is absent.
func (t *Track) Get(key string) string {
	switch key {
	case "track":
		return t.Number
	case "title":
		return t.Title
	case "performer":
		return t.Performer
	case "start":
		return t.Start
	case "end":
		return t.End
	default:
		return t.Extra[key]
	}
}

// Tags returns the track metadata as key/value pairs. Timing fields are
// structural and excluded; the ordinal is included under "track".
func (t *Track) Tags() map[string]string {
	tags := make(map[string]string, len(t.Extra)+3)
	for key, value := range t.Extra {
		tags[key] = value
	}
	if t.Number != "" {
		tags["track"] = t.Number
	}
	if t.Title != "" {
		tags["title"] = t.Title
	}
	if t.Performer != "" {
		tags["performer"] = t.Performer
	}
	return tags
}

func (t *Track) set(key, value string) {
	switch key {
	case "track":
		t.Number = value
	case "title":
		t.Title = value
	case "performer":
		t.Performer = value
	case "start":
		// A track's start comes from its primary index and is set exactly
		// once; later directives never overwrite it.
		if t.Start == "" {
			t.Start = value
		}
	case "end":
		t.End = value
	default:
		if t.Extra == nil {
			t.Extra = make(map[string]string)
		}
		t.Extra[key] = value
	}
}
