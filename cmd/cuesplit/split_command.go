package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cuesplit/internal/media/ffmpeg"
	"cuesplit/internal/media/ffprobe"
	"cuesplit/internal/splitter"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var opts splitter.Options

	cmd := &cobra.Command{
		Use:   "split <sheet.cue>",
		Short: "Cut the sheet's media file into per-track files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, closer, err := ctx.newLogger(os.Stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			if store != nil {
				defer store.Close()
			}

			cutter := &ffmpeg.Cutter{Binary: cfg.FFmpeg.Binary}
			runner, err := splitter.New(cfg, logger, cutter, ffprobe.Inspect, store)
			if err != nil {
				return err
			}

			result, err := runner.Split(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Skipped {
				fmt.Fprintf(out, "Already processed %s; use --force to split again\n", args[0])
				return nil
			}
			verb := "Wrote"
			if opts.DryRun {
				verb = "Would write"
			}
			fmt.Fprintf(out, "%s %d tracks from %s\n", verb, len(result.Outputs), result.Source)
			for _, output := range result.Outputs {
				fmt.Fprintln(out, " ", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory for the track files (default from config)")
	cmd.Flags().StringVar(&opts.AudioEncoding, "audio-encoding", "", "Extension for the track files, e.g. flac or mp3")
	cmd.Flags().StringVar(&opts.TextEncoding, "text-encoding", "", "Fallback character encoding of the sheet")
	cmd.Flags().StringVar(&opts.Offset, "offset", "", "Shift every timestamp by HH:MM:SS[.fraction]")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Log the planned cuts without running ffmpeg")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Split even if the sheet was processed before")

	return cmd
}
