package script

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/calculation"
	"github.com/shibukawa/scriptstep/parameter"
	"golang.org/x/sync/errgroup"
)

// Options controls a Decompiler
type Options struct {
	// OnError applies to steps whose parameters fail to parse
	OnError scriptstep.FailurePolicy
	// Unsupported applies to steps without a decompiler
	Unsupported scriptstep.FailurePolicy
	// Sentinel replaces the line of a failed step under PolicySentinel
	Sentinel string
	// CommentDisabledSteps prefixes lines of disabled steps with "// "
	CommentDisabledSteps bool
	// Parallel is the worker count; 0 uses the number of CPUs
	Parallel int
	Filter   *Filter
	Formula  calculation.Reconstructor
}

// DefaultOptions returns the options used when no configuration is given
func DefaultOptions() Options {
	return Options{
		OnError:              scriptstep.PolicyError,
		Unsupported:          scriptstep.PolicySkip,
		Sentinel:             scriptstep.DefaultSentinel,
		CommentDisabledSteps: true,
		Parallel:             1,
		Formula:              calculation.TextSource{},
	}
}

// OptionsFromConfig builds Options from a loaded configuration, compiling its filter
func OptionsFromConfig(config *scriptstep.Config) (Options, error) {
	filter, err := NewFilter(config.Filter)
	if err != nil {
		return Options{}, err
	}

	return Options{
		OnError:              config.OnError,
		Unsupported:          config.Unsupported,
		Sentinel:             config.Sentinel,
		CommentDisabledSteps: config.ShouldCommentDisabledSteps(),
		Parallel:             config.Parallel,
		Filter:               filter,
		Formula:              calculation.New(config.FormulaSource),
	}, nil
}

// Decompiler renders every step of a script
type Decompiler struct {
	options    Options
	dispatcher *Dispatcher
}

// New creates a Decompiler. Empty policies and sentinel fall back to the defaults.
func New(options Options) *Decompiler {
	defaults := DefaultOptions()

	if options.OnError == "" {
		options.OnError = defaults.OnError
	}

	if options.Unsupported == "" {
		options.Unsupported = defaults.Unsupported
	}

	if options.Sentinel == "" {
		options.Sentinel = defaults.Sentinel
	}

	if options.Parallel <= 0 {
		options.Parallel = runtime.NumCPU()
	}

	return &Decompiler{
		options:    options,
		dispatcher: NewDispatcher(parameter.NewParser(options.Formula)),
	}
}

// DecompileDocument extracts the steps of data and runs them
func (d *Decompiler) DecompileDocument(ctx context.Context, data []byte) (*Report, error) {
	fragments, err := Extract(data)
	if err != nil {
		return nil, err
	}

	return d.Run(ctx, fragments)
}

// Run decompiles fragments. Results keep the order of fragments regardless of
// the worker count. Under PolicyError the first failing step cancels the run.
func (d *Decompiler) Run(ctx context.Context, fragments []Fragment) (*Report, error) {
	results := make([]StepResult, len(fragments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.options.Parallel)

	for i, fragment := range fragments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := d.decompile(fragment)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Steps: results}, nil
}

func (d *Decompiler) decompile(fragment Fragment) (StepResult, error) {
	result := newStepResult(fragment)

	matched, err := d.options.Filter.Match(fragment)
	if err != nil {
		return result, err
	}

	if !matched {
		result.Status = StatusFiltered
		return result, nil
	}

	decompiler, err := d.dispatcher.Decompiler(fragment.Kind)
	if err != nil {
		return d.fail(result, fragment, d.options.Unsupported, err)
	}

	line, ok, err := decompiler.Decompile(fragment.XML)
	if err != nil {
		return d.fail(result, fragment, d.options.OnError, err)
	}

	if !ok {
		result.Status = StatusEmpty
		return result, nil
	}

	result.Status = StatusOK
	result.Line = d.displayLine(fragment, line)

	return result, nil
}

func (d *Decompiler) fail(result StepResult, fragment Fragment, policy scriptstep.FailurePolicy, err error) (StepResult, error) {
	switch policy {
	case scriptstep.PolicySkip:
		result.Status = StatusSkipped
	case scriptstep.PolicySentinel:
		result.Status = StatusSentinel
		result.Line = d.displayLine(fragment, d.options.Sentinel)
	default:
		return result, fmt.Errorf("step %d (%s): %w", fragment.Index, fragment.Kind, err)
	}

	result.Error = err.Error()

	return result, nil
}

func (d *Decompiler) displayLine(fragment Fragment, line string) string {
	if !fragment.Enabled && d.options.CommentDisabledSteps {
		return "// " + line
	}

	return line
}
