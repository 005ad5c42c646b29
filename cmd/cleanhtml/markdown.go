package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/njchilds90/cleanhtml"
	"github.com/njchilds90/cleanhtml/markdown"
)

func markdownCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "markdown [file]",
		Short: "Render Markdown to sanitized HTML",
		Long: `Markdown renders GitHub-flavored Markdown to HTML, passing raw
inline HTML through the renderer, then sanitizes the result before
writing it to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			var p *cleanhtml.Policy
			if configPath != "" {
				cfg, err := loadPolicyFile(configPath)
				if err != nil {
					return err
				}
				p = cfg.Policy()
				logger.Debug().Str("config", configPath).Msg("loaded policy file")
			}

			in, err := readInput(args)
			if err != nil {
				return err
			}

			out, err := markdown.ToSafeHTML(in, p)
			if err != nil {
				return err
			}
			logger.Debug().
				Int("bytes_in", len(in)).
				Int("bytes_out", len(out)).
				Msg("rendered")

			if _, err := fmt.Fprintln(os.Stdout, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Policy file (YAML)")

	return cmd
}
