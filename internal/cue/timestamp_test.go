package cue

import (
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		offset string
		want   string
	}{
		{name: "zero", value: "00:00:00", offset: "", want: "00:00:00.000000"},
		{name: "minutes and seconds", value: "03:15:00", offset: "", want: "00:03:15.000000"},
		{name: "minutes overflow into hours", value: "75:30:00", offset: "", want: "01:15:30.000000"},
		{name: "fraction right-padded", value: "00:01:5", offset: "", want: "00:00:01.500000"},
		{name: "two digit fraction", value: "00:01:05", offset: "", want: "00:00:01.050000"},
		{name: "full precision fraction", value: "00:00:123456", offset: "", want: "00:00:00.123456"},
		{name: "hour offset", value: "00:01:00:00", offset: "01:00:00.00", want: "01:01:00.000000"},
		{name: "fractional offset", value: "00:30:00", offset: "00:00:01.25", want: "00:00:31.250000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offset, err := parseOffset(tc.offset)
			if err != nil {
				t.Fatalf("parseOffset(%q): %v", tc.offset, err)
			}
			got, err := normalizeTimestamp(tc.value, offset)
			if err != nil {
				t.Fatalf("normalizeTimestamp(%q): %v", tc.value, err)
			}
			if got != tc.want {
				t.Errorf("normalizeTimestamp(%q, %q) = %q, want %q", tc.value, tc.offset, got, tc.want)
			}
		})
	}
}

func TestNormalizeTimestampMonotonicInOffset(t *testing.T) {
	base, err := normalizeTimestamp("12:34:56", 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, delta := range []time.Duration{time.Microsecond, time.Second, time.Hour} {
		shifted, err := normalizeTimestamp("12:34:56", delta)
		if err != nil {
			t.Fatal(err)
		}
		if shifted <= base {
			t.Errorf("offset %v did not increase output: %q vs %q", delta, shifted, base)
		}
	}
}

func TestParseTimestampErrors(t *testing.T) {
	for _, value := range []string{"", "12", "12:34", "a:b:c", "1:2:3:4:5", "00:00:", "00:00:x9", "-1:00:00", "00:-1:00", "-1:00:00:00"} {
		if _, err := parseTimestamp(value); err == nil {
			t.Errorf("parseTimestamp(%q): expected error", value)
		}
	}
}

func TestParseOffsetErrors(t *testing.T) {
	for _, value := range []string{"01:00", "x:00:00", "00:y:00", "00:00:z", "00:00:00.abc", "-1:00:00", "00:00:-5", "+1:00:00"} {
		if _, err := parseOffset(value); err == nil {
			t.Errorf("parseOffset(%q): expected error", value)
		}
	}
}

func TestParseOffsetEmptyIsZero(t *testing.T) {
	got, err := parseOffset("  ")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("blank offset: got %v, want 0", got)
	}
}
