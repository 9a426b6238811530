package cli

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/intcalc/internal/demo"
)

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // keeps logs out of the transcript and JSON
		Verbose:   opts.Verbose,
	}

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(formatter.GetErrWriter(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	script, err := demo.DefaultScript()
	if err != nil {
		_ = formatter.Error(ErrCodeScript, "invalid demonstration script", err.Error())
		return WrapExitError(ExitFailure, "invalid demonstration script", err)
	}
	formatter.VerboseLog("Loaded script %q: %d operand(s), %d section(s)",
		script.Banner, len(script.Operands), len(script.Sections))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := demo.Run(ctx, script, opts.Tokens)
	if err != nil {
		_ = formatter.Error(ErrCodeRun, "demonstration failed", err.Error())
		return WrapExitError(ExitFailure, "demonstration failed", err)
	}

	if opts.Format == "json" {
		data, err := report.Canonical()
		if err != nil {
			return WrapExitError(ExitFailure, "encoding report", err)
		}
		formatter.TraceID = report.RunID
		return formatter.Success(json.RawMessage(data))
	}

	return demo.RenderText(formatter.Writer, report)
}
