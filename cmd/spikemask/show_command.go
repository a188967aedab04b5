package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"spikemask/internal/artifacts"
	"spikemask/internal/config"
	"spikemask/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <recording>",
		Short: "Show per-polarity artifact counts for a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			rec, err := store.Open(path)
			if err != nil {
				return err
			}
			defer rec.Close()

			headers := []string{"Sign", "Spikes", "Clean", "Rate", "Amplitude", "Bincount", "Double"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}

			var rows [][]string
			for _, sign := range store.Signs() {
				codes, err := rec.Artifacts(cmd.Context(), sign)
				if errors.Is(err, store.ErrRecordMissing) {
					rows = append(rows, []string{string(sign), "-", "-", "-", "-", "-", "-"})
					continue
				}
				if err != nil {
					return fmt.Errorf("read artifacts for %s: %w", sign, err)
				}

				counts := map[artifacts.Code]int{}
				for _, code := range codes {
					counts[artifacts.Code(code)]++
				}
				rows = append(rows, []string{
					string(sign),
					formatCount(len(codes)),
					formatCount(counts[artifacts.CodeNone]),
					formatCount(counts[artifacts.CodeRate]),
					formatCount(counts[artifacts.CodeAmplitude]),
					formatCount(counts[artifacts.CodeBincount]),
					formatCount(counts[artifacts.CodeDouble]),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRows(headers, rows, aligns))
			return nil
		},
	}
}
