package cue

import "fmt"

// inferEnds fills in missing end times: every track but the last ends where
// the next one starts. The final track is left open-ended so the cut runs to
// end-of-media.
func inferEnds(tracks []*Track) {
	for i := 0; i+1 < len(tracks); i++ {
		if tracks[i].End == "" {
			tracks[i].End = tracks[i+1].Start
		}
	}
}

// disambiguateTitles rewrites repeated titles so every track ends up with a
// distinct one. The first occurrence is kept as-is; repeats gain a performer
// suffix when the track names one, otherwise a per-title occurrence counter.
func disambiguateTitles(tracks []*Track) {
	seen := make(map[string]int, len(tracks))
	for _, track := range tracks {
		prior := seen[track.Title]
		seen[track.Title] = prior + 1
		if prior == 0 {
			continue
		}
		if track.Performer != "" {
			track.Title = fmt.Sprintf("%s (%s ver.)", track.Title, track.Performer)
		} else {
			track.Title = fmt.Sprintf("%s (ver. %d)", track.Title, prior)
		}
	}
}
