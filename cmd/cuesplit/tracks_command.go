package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cuesplit/internal/cue"
	"cuesplit/internal/textio"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var textEncoding string
	var offset string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tracks <sheet.cue>",
		Short: "Parse a Cue Sheet and list its tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(textEncoding) == "" {
				textEncoding = cfg.Split.TextEncoding
			}

			doc, err := textio.ReadFile(args[0], textEncoding)
			if err != nil {
				return err
			}
			sheet, err := cue.Parse(strings.NewReader(doc), cue.Options{Offset: offset})
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sheet)
			}

			out := cmd.OutOrStdout()
			if sheet.Title != "" {
				fmt.Fprintf(out, "%s", sheet.Title)
				if sheet.Performer != "" {
					fmt.Fprintf(out, " / %s", sheet.Performer)
				}
				fmt.Fprintln(out)
			}
			if sheet.File != "" {
				fmt.Fprintf(out, "File: %s\n", sheet.File)
			}

			rows := make([][]string, 0, len(sheet.Tracks))
			for _, track := range sheet.Tracks {
				end := track.End
				if end == "" {
					end = "(end of media)"
				}
				rows = append(rows, []string{track.Number, track.Title, track.Performer, track.Start, end})
			}
			fmt.Fprintln(out, renderTracks(out,
				[]string{"#", "Title", "Performer", "Start", "End"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVar(&textEncoding, "text-encoding", "", "Fallback character encoding of the sheet")
	cmd.Flags().StringVar(&offset, "offset", "", "Shift every timestamp by HH:MM:SS[.fraction]")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the parsed sheet as JSON")

	return cmd
}
