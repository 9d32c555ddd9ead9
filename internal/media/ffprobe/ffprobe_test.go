package ffprobe

import (
	"context"
	"encoding/json"
	"testing"
)

func TestResultDecoding(t *testing.T) {
	payload := `{
		"streams": [
			{"index": 0, "codec_name": "pcm_s16le", "codec_type": "audio", "sample_rate": "44100", "channels": 2}
		],
		"format": {"filename": "set.wav", "duration": "3625.43", "format_name": "wav"}
	}`

	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatal(err)
	}
	if result.AudioStreamCount() != 1 {
		t.Errorf("audio streams: got %d", result.AudioStreamCount())
	}
	if got := result.DurationSeconds(); got != 3625.43 {
		t.Errorf("duration: got %v", got)
	}
}

func TestDurationSecondsUnavailable(t *testing.T) {
	for _, duration := range []string{"", "N/A", "-1"} {
		result := Result{Format: Format{Duration: duration}}
		if got := result.DurationSeconds(); got != 0 {
			t.Errorf("duration %q: got %v, want 0", duration, got)
		}
	}
}

func TestInspectEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
