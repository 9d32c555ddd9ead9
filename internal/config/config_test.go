package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Split.AudioEncoding != "flac" {
		t.Errorf("audio encoding default: %q", cfg.Split.AudioEncoding)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" || cfg.FFmpeg.ProbeBinary != "ffprobe" {
		t.Errorf("tool defaults: %q, %q", cfg.FFmpeg.Binary, cfg.FFmpeg.ProbeBinary)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Errorf("output dir not expanded: %q", cfg.Paths.OutputDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists should be false for missing file")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default level: %q", cfg.Logging.Level)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuesplit.toml")
	content := `
[paths]
output_dir = "~/splits"

[split]
audio_encoding = ".mp3"
text_encoding = "shift_jis"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolution: exists=%v path=%q", exists, resolved)
	}
	if !strings.HasSuffix(cfg.Paths.OutputDir, "splits") || strings.Contains(cfg.Paths.OutputDir, "~") {
		t.Errorf("output dir not expanded: %q", cfg.Paths.OutputDir)
	}
	// Leading dot trimmed, case preserved.
	if cfg.Split.AudioEncoding != "mp3" {
		t.Errorf("audio encoding: %q", cfg.Split.AudioEncoding)
	}
	if cfg.Split.TextEncoding != "shift_jis" {
		t.Errorf("text encoding: %q", cfg.Split.TextEncoding)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuesplit.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuesplit.toml")
	if err := os.WriteFile(path, []byte("not toml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[split]") {
		t.Errorf("sample missing sections: %q", data)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/music")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "music") {
		t.Errorf("got %q", got)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.History.Path = filepath.Join(dir, "state", "history.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir, filepath.Join(dir, "state")} {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", p)
		}
	}
}
