package main

import (
	"context"
	"testing"
	"time"

	"cuesplit/internal/history"
)

func TestHistoryCommandDisabled(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"history"}, env.configPath); err == nil {
		t.Fatal("expected error when history is disabled")
	}
}

func TestHistoryCommandListsRuns(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeConfig(t, true)

	store, err := history.Open(env.historyPath)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	run := history.Run{
		ID:         "run-1",
		SheetPath:  "/music/set.cue",
		SourceFile: "set.wav",
		TrackCount: 9,
		FinishedAt: time.Now(),
	}
	if err := store.Record(context.Background(), run); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "/music/set.cue")
	requireContains(t, out, "9")
}
