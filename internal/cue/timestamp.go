package cue

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// normalizeTimestamp converts a sheet timestamp (MM:SS:FF, optionally led by
// an hours field) plus the caller offset into an absolute HH:MM:SS.ffffff
// string. The field after the last colon is parsed as a literal fractional
// second, not CD frames. Malformed input is fatal to the parse.
func normalizeTimestamp(value string, offset time.Duration) (string, error) {
	parsed, err := parseTimestamp(value)
	if err != nil {
		return "", err
	}
	return formatTimestamp(parsed + offset), nil
}

func parseTimestamp(value string) (time.Duration, error) {
	parts := strings.Split(value, ":")
	var hours uint64
	switch len(parts) {
	case 3:
	case 4:
		parsed, err := parseField(parts[0])
		if err != nil {
			return 0, fmt.Errorf("timestamp %q: hours: %w", value, err)
		}
		hours = parsed
		parts = parts[1:]
	default:
		return 0, fmt.Errorf("timestamp %q: want MM:SS:FF", value)
	}

	minutes, err := parseField(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: minutes: %w", value, err)
	}
	seconds, err := parseField(parts[1])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: seconds: %w", value, err)
	}
	fraction, err := parseFraction(parts[2])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: fraction: %w", value, err)
	}

	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		fraction
	return total, nil
}

// parseOffset parses the caller-supplied HH:MM:SS.fraction correction. An
// empty offset is zero.
func parseOffset(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("offset %q: want HH:MM:SS.fraction", value)
	}
	hours, err := parseField(parts[0])
	if err != nil {
		return 0, fmt.Errorf("offset %q: hours: %w", value, err)
	}
	minutes, err := parseField(parts[1])
	if err != nil {
		return 0, fmt.Errorf("offset %q: minutes: %w", value, err)
	}
	secondsField, fractionField, hasFraction := strings.Cut(parts[2], ".")
	seconds, err := parseField(secondsField)
	if err != nil {
		return 0, fmt.Errorf("offset %q: seconds: %w", value, err)
	}
	var fraction time.Duration
	if hasFraction {
		fraction, err = parseFraction(fractionField)
		if err != nil {
			return 0, fmt.Errorf("offset %q: fraction: %w", value, err)
		}
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		fraction
	return total, nil
}

// parseField parses one hours/minutes/seconds field. Fields are unsigned;
// negative values would make formatTimestamp emit nonsense.
func parseField(value string) (uint64, error) {
	return strconv.ParseUint(value, 10, 64)
}

// parseFraction interprets a digit run as fractional seconds: "5" is half a
// second, "05" five hundredths. Precision beyond microseconds is discarded.
func parseFraction(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("empty fraction")
	}
	digits := value
	if len(digits) > 6 {
		digits = digits[:6]
	}
	parsed, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	for i := len(digits); i < 6; i++ {
		parsed *= 10
	}
	return time.Duration(parsed) * time.Microsecond, nil
}

func formatTimestamp(d time.Duration) string {
	micros := d.Microseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%06d",
		micros/3_600_000_000,
		micros/60_000_000%60,
		micros/1_000_000%60,
		micros%1_000_000)
}
