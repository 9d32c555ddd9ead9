package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("split finished", "component", "splitter", "tracks", 12)

	line := buf.String()
	if !strings.Contains(line, "INFO splitter: split finished") {
		t.Errorf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "tracks=12") {
		t.Errorf("missing attr: %q", line)
	}
}

func TestNewConsoleQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("wrote", "path", "out dir/01 Intro.flac")

	if !strings.Contains(buf.String(), `path="out dir/01 Intro.flac"`) {
		t.Errorf("value not quoted: %q", buf.String())
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn suppressed: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("parsed", "tracks", 2)

	out := buf.String()
	if !strings.Contains(out, `"msg":"parsed"`) || !strings.Contains(out, `"tracks":2`) {
		t.Errorf("unexpected json: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWithAttrsCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With("component", "cutter").Info("cut", "track", "01")

	if !strings.Contains(buf.String(), "INFO cutter: cut track=01") {
		t.Errorf("unexpected line: %q", buf.String())
	}
}

func TestOpenLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer

	w, closer, err := OpenLogFile(dir, "cuesplit.log", &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger, err := New(Options{Output: w})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(filepath.Join(dir, "cuesplit.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(buf.String(), "hello") {
		t.Error("record not duplicated to file and base writer")
	}
}

func TestNewNop(t *testing.T) {
	// Must not panic and must stay silent.
	NewNop().Error("ignored")
}
