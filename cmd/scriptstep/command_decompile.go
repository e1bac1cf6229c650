package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/script"
)

// DecompileCmd represents the decompile command
type DecompileCmd struct {
	File          string `arg:"" optional:"" help:"Script XML file (reads stdin when omitted)" type:"path"`
	Format        string `help:"Output format (text, json, yaml)"`
	OnError       string `help:"Policy for steps that fail to parse (error, skip, sentinel)"`
	Filter        string `help:"CEL expression selecting steps (variables: index, id, name, kind, enabled)"`
	Parallel      *int   `help:"Number of parallel workers (0 means CPU count)"`
	FormulaSource string `help:"Calculation text source (text, chunks)"`
	Check         bool   `help:"Exit with an error when any step could not be decompiled"`
}

// Run executes the decompile command
func (cmd *DecompileCmd) Run(ctx *Context) error {
	config, err := scriptstep.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.applyFlags(config)

	if err := config.Validate(); err != nil {
		return err
	}

	setupColor(ctx, config.UseColor())

	options, err := script.OptionsFromConfig(config)
	if err != nil {
		return err
	}

	if cmd.Parallel != nil {
		options.Parallel = *cmd.Parallel
	}

	data, err := cmd.readInput(ctx)
	if err != nil {
		return err
	}

	info(ctx, "Decompiling %s (formula source: %s, on_error: %s)", cmd.inputName(), config.FormulaSource, options.OnError)

	report, err := script.New(options).DecompileDocument(context.Background(), data)
	if err != nil {
		return fmt.Errorf("failed to decompile %s: %w", cmd.inputName(), err)
	}

	for _, step := range report.Steps {
		switch step.Status {
		case script.StatusSkipped, script.StatusSentinel:
			warn(ctx, "step %d (%s): %s", step.Index, step.Kind, step.Error)
		case script.StatusFiltered:
			info(ctx, "step %d (%s) filtered out", step.Index, step.Kind)
		}
	}

	if err := report.Encode(ctx.Stdout, config.Output.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	failed := report.Failed()
	if failed > 0 {
		failure(ctx, "%d of %d steps could not be decompiled", failed, len(report.Steps))

		if cmd.Check {
			return fmt.Errorf("%w: %d step(s)", ErrStepsFailed, failed)
		}

		return nil
	}

	success(ctx, "%d steps decompiled", len(report.Steps))

	return nil
}

// applyFlags lets command line flags override the configuration
func (cmd *DecompileCmd) applyFlags(config *scriptstep.Config) {
	if cmd.Format != "" {
		config.Output.Format = cmd.Format
	}

	if cmd.OnError != "" {
		config.OnError = scriptstep.FailurePolicy(cmd.OnError)
	}

	if cmd.Filter != "" {
		config.Filter = cmd.Filter
	}

	if cmd.FormulaSource != "" {
		config.FormulaSource = scriptstep.FormulaSource(cmd.FormulaSource)
	}
}

func (cmd *DecompileCmd) readInput(ctx *Context) ([]byte, error) {
	if cmd.File == "" {
		data, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(cmd.File)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrInputFileNotExist, cmd.File)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}

	return data, nil
}

func (cmd *DecompileCmd) inputName() string {
	if cmd.File == "" {
		return "stdin"
	}

	return cmd.File
}
