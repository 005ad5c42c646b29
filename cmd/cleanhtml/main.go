package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/njchilds90/cleanhtml/internal/log"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "cleanhtml",
		Short: "Whitelist-driven HTML sanitizer",
		Long: `cleanhtml removes disallowed tags and attributes from untrusted
HTML and neutralizes javascript:/vbscript: schemes, leaving markup
that is safe to re-embed in a page.

Input is read from a file argument or stdin; sanitized output goes
to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		sanitizeCmd(),
		stripCmd(),
		markdownCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger honoring --verbose.
func newLogger() zerolog.Logger {
	return log.New(os.Stderr, verbose)
}

// readInput returns the contents of the optional file argument, or
// stdin when no argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}
