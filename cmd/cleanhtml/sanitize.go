package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/njchilds90/cleanhtml"
)

func sanitizeCmd() *cobra.Command {
	var (
		configPath string

		tags       []string
		attrs      []string
		scriptable []string

		addTags  []string
		addAttrs []string
	)

	cmd := &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Sanitize HTML from a file or stdin",
		Long: `Sanitize reads HTML, removes tags and attributes not on the
whitelist, strips javascript:/vbscript: attribute values, and writes
the clean fragment to stdout.

Whitelists come from the built-in defaults, optionally adjusted by a
policy file (--config) and by flags. The --tags/--attrs/--scriptable
flags replace a list outright; --add-tags/--add-attrs supplement the
defaults. A replacement always wins over a supplement for the same
list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg := &cleanhtml.Config{}
			if configPath != "" {
				var err error
				cfg, err = loadPolicyFile(configPath)
				if err != nil {
					return err
				}
				logger.Debug().Str("config", configPath).Msg("loaded policy file")
			}

			// Flags layer on top of the file.
			if cmd.Flags().Changed("tags") {
				cfg.ReplacementTags = tags
			}
			if cmd.Flags().Changed("attrs") {
				cfg.ReplacementAttributes = attrs
			}
			if cmd.Flags().Changed("scriptable") {
				cfg.ReplacementScriptable = scriptable
			}
			cfg.AdditionalTags = append(cfg.AdditionalTags, addTags...)
			cfg.AdditionalAttributes = append(cfg.AdditionalAttributes, addAttrs...)

			p := cfg.Policy()
			if len(p.Tags) == 0 {
				logger.Warn().Msg("empty tag whitelist: input passes through unsanitized")
			}

			in, err := readInput(args)
			if err != nil {
				return err
			}

			out := cleanhtml.Sanitize(string(in), p)
			logger.Debug().
				Int("bytes_in", len(in)).
				Int("bytes_out", len(out)).
				Int("tags", len(p.Tags)).
				Int("attributes", len(p.Attributes)).
				Msg("sanitized")

			if _, err := fmt.Fprintln(os.Stdout, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Policy file (YAML)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replace the tag whitelist")
	cmd.Flags().StringSliceVar(&attrs, "attrs", nil, "Replace the attribute whitelist")
	cmd.Flags().StringSliceVar(&scriptable, "scriptable", nil, "Replace the scriptable-attribute list")
	cmd.Flags().StringSliceVar(&addTags, "add-tags", nil, "Add tags to the default whitelist")
	cmd.Flags().StringSliceVar(&addAttrs, "add-attrs", nil, "Add attributes to the default whitelist")

	return cmd
}
