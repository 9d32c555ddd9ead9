package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSheet = `FILE "set.wav" WAVE
TITLE "Morning Mix"
PERFORMER "Someone"
TRACK 01 AUDIO
TITLE "Opener"
INDEX 01 00:00:00
TRACK 02 AUDIO
TITLE "Closer"
INDEX 01 03:00:00
`

type cliTestEnv struct {
	baseDir     string
	configPath  string
	outputDir   string
	historyPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		baseDir:     base,
		configPath:  filepath.Join(base, "config.toml"),
		outputDir:   filepath.Join(base, "out"),
		historyPath: filepath.Join(base, "history.db"),
	}
	env.writeConfig(t, false)
	return env
}

func (env *cliTestEnv) writeConfig(t *testing.T, historyEnabled bool) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
output_dir = %q
log_dir = %q

[split]
audio_encoding = "flac"
text_encoding = "windows-1252"

[history]
enabled = %v
path = %q

[logging]
format = "console"
level = "error"
`, env.outputDir, filepath.Join(env.baseDir, "logs"), historyEnabled, env.historyPath)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func (env *cliTestEnv) writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(env.baseDir, "set.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
