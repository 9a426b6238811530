package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/intcalc/internal/demo"
)

// RootOptions holds global flags for the command.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Tokens overrides the run id generator (for testing).
	// If nil, defaults to demo.UUIDv7Generator.
	Tokens demo.TokenGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the intcalc command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intcalc",
		Short: "intcalc - integer calculator demonstration",
		Long: `Run the integer calculator demonstration.

Applies add, subtract, multiply, divide and modulo to fixed 32-bit operands,
then repeats divide and modulo with a zero divisor to show the guarded paths.
Zero divisors are reported, not fatal: the command always exits 0.

Example:
  intcalc
  intcalc --format json
  intcalc --verbose`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
