package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously split sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			if store == nil {
				return errors.New("history is disabled in the configuration")
			}
			defer store.Close()

			runs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.FinishedAt.Local().Format(time.DateTime),
					run.SheetPath,
					run.SourceFile,
					strconv.Itoa(run.TrackCount),
				})
			}
			fmt.Fprintln(out, renderTracks(out,
				[]string{"Finished", "Sheet", "Source", "Tracks"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit history as JSON")
	return cmd
}
