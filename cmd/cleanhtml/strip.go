package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/njchilds90/cleanhtml"
)

func stripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove all HTML tags, leaving plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			in, err := readInput(args)
			if err != nil {
				return err
			}

			out, err := cleanhtml.StripTags(string(in))
			if err != nil {
				return fmt.Errorf("strip tags: %w", err)
			}
			logger.Debug().
				Int("bytes_in", len(in)).
				Int("bytes_out", len(out)).
				Msg("stripped")

			if _, err := fmt.Fprintln(os.Stdout, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
}
