package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"cuesplit/internal/config"
	"cuesplit/internal/cue"
	"cuesplit/internal/history"
	"cuesplit/internal/media/ffmpeg"
	"cuesplit/internal/media/ffprobe"
	"cuesplit/internal/textio"
	"cuesplit/internal/textutil"
)

// lockFileName is created inside the output directory for the duration of a
// run.
const lockFileName = ".cuesplit.lock"

// Cutter extracts a single track from the source media.
type Cutter interface {
	Args(req ffmpeg.Request) []string
	Cut(ctx context.Context, req ffmpeg.Request) error
}

// Prober inspects the source media. It matches ffprobe.Inspect.
type Prober func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Splitter runs the cue-to-tracks workflow.
type Splitter struct {
	cfg    *config.Config
	log    *slog.Logger
	cutter Cutter
	probe  Prober
	store  *history.Store
}

// New constructs a splitter. store may be nil when history is disabled;
// probe may be nil to skip source inspection.
func New(cfg *config.Config, log *slog.Logger, cutter Cutter, probe Prober, store *history.Store) (*Splitter, error) {
	if cfg == nil || cutter == nil {
		return nil, errors.New("splitter requires config and cutter")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Splitter{
		cfg:    cfg,
		log:    log.With("component", "splitter"),
		cutter: cutter,
		probe:  probe,
		store:  store,
	}, nil
}

// Options are per-invocation overrides of the configured defaults.
type Options struct {
	OutputDir     string
	AudioEncoding string
	TextEncoding  string
	Offset        string
	DryRun        bool
	Force         bool
}

// Result summarizes a finished run.
type Result struct {
	RunID   string
	Sheet   *cue.Sheet
	Source  string
	Outputs []string
	Skipped bool
}

// Split processes one Cue Sheet.
func (s *Splitter) Split(ctx context.Context, sheetPath string, opts Options) (*Result, error) {
	sheetPath, err := config.ExpandPath(sheetPath)
	if err != nil {
		return nil, err
	}

	if s.store != nil && !opts.Force {
		processed, err := s.store.Processed(ctx, sheetPath)
		if err != nil {
			return nil, fmt.Errorf("check history: %w", err)
		}
		if processed {
			s.log.Info("sheet already processed, skipping", "sheet", sheetPath)
			return &Result{Skipped: true}, nil
		}
	}

	runID := uuid.NewString()
	log := s.log.With("run_id", runID)

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		outputDir = s.cfg.Paths.OutputDir
	}
	if outputDir, err = config.ExpandPath(outputDir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another split is writing to %s", outputDir)
	}
	defer func() { _ = lock.Unlock() }()

	textEncoding := strings.TrimSpace(opts.TextEncoding)
	if textEncoding == "" {
		textEncoding = s.cfg.Split.TextEncoding
	}
	doc, err := textio.ReadFile(sheetPath, textEncoding)
	if err != nil {
		return nil, err
	}

	sheet, err := cue.Parse(strings.NewReader(doc), cue.Options{Offset: opts.Offset})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", sheetPath, err)
	}
	if len(sheet.Tracks) == 0 {
		return nil, fmt.Errorf("no tracks in %s", sheetPath)
	}
	if sheet.File == "" {
		return nil, fmt.Errorf("no FILE directive in %s", sheetPath)
	}

	source := sheet.File
	if !filepath.IsAbs(source) {
		source = filepath.Join(filepath.Dir(sheetPath), source)
	}
	log.Info("parsed sheet",
		"sheet", sheetPath,
		"source", source,
		"title", sheet.Title,
		"tracks", len(sheet.Tracks))

	s.inspectSource(ctx, log, source, opts.DryRun)

	encoding := strings.TrimSpace(strings.TrimPrefix(opts.AudioEncoding, "."))
	if encoding == "" {
		encoding = s.cfg.Split.AudioEncoding
	}

	outputs := make([]string, 0, len(sheet.Tracks))
	for _, track := range sheet.Tracks {
		dest := filepath.Join(outputDir, outputName(track, encoding))
		req := ffmpeg.Request{Source: source, Dest: dest, Sheet: sheet, Track: track}

		if opts.DryRun {
			log.Info("would cut track", "track", track.Number, "dest", dest,
				"args", strings.Join(s.cutter.Args(req), " "))
			outputs = append(outputs, dest)
			continue
		}

		log.Info("cutting track", "track", track.Number, "title", track.Title, "dest", dest)
		if err := s.cutter.Cut(ctx, req); err != nil {
			return nil, err
		}
		outputs = append(outputs, dest)
	}

	result := &Result{
		RunID:   runID,
		Sheet:   sheet,
		Source:  source,
		Outputs: outputs,
	}

	if s.store != nil && !opts.DryRun {
		run := history.Run{
			ID:         runID,
			SheetPath:  sheetPath,
			SourceFile: sheet.File,
			TrackCount: len(sheet.Tracks),
			FinishedAt: time.Now(),
		}
		if err := s.store.Record(ctx, run); err != nil {
			log.Warn("failed to record run in history", "error", err)
		}
	}

	log.Info("split finished", "tracks", len(outputs), "output_dir", outputDir, "dry_run", opts.DryRun)
	return result, nil
}

// inspectSource probes the media file before cutting. Probe failures are
// advisory; ffmpeg surfaces the real error if the source is unusable.
func (s *Splitter) inspectSource(ctx context.Context, log *slog.Logger, source string, dryRun bool) {
	if s.probe == nil || dryRun {
		return
	}
	result, err := s.probe(ctx, s.cfg.FFmpeg.ProbeBinary, source)
	if err != nil {
		log.Warn("source inspection failed", "source", source, "error", err)
		return
	}
	if result.AudioStreamCount() == 0 {
		log.Warn("source has no audio streams", "source", source)
	}
	log.Debug("source inspected",
		"source", source,
		"duration_seconds", result.DurationSeconds(),
		"audio_streams", result.AudioStreamCount())
}

// outputName builds the per-track file name: the sheet-supplied ordinal, the
// sanitized title, and the extension. The ordinal prefix keeps files sorted in
// disc order even when titles repeat across sheets.
func outputName(track *cue.Track, encoding string) string {
	name := strings.TrimSpace(track.Number + " " + track.Title)
	if name == "" {
		name = "track"
	}
	return textutil.SanitizeTitle(name) + "." + encoding
}
