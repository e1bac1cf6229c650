package script

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Status is the outcome of one step
type Status string

const (
	// StatusOK means the step was rendered
	StatusOK Status = "ok"
	// StatusSkipped means the step failed and produced no line
	StatusSkipped Status = "skipped"
	// StatusSentinel means the step failed and the sentinel line was emitted
	StatusSentinel Status = "sentinel"
	// StatusFiltered means the filter excluded the step
	StatusFiltered Status = "filtered"
	// StatusEmpty means the fragment had no step name
	StatusEmpty Status = "empty"
)

// StepResult is the rendering of one step
type StepResult struct {
	Index   int    `json:"index" yaml:"index"`
	ID      uint32 `json:"id" yaml:"id"`
	Kind    string `json:"kind" yaml:"kind"`
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	UUID    string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Status  Status `json:"status" yaml:"status"`
	Line    string `json:"line,omitempty" yaml:"line,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newStepResult(fragment Fragment) StepResult {
	result := StepResult{
		Index:   fragment.Index,
		ID:      fragment.ID,
		Kind:    fragment.Kind.String(),
		Name:    fragment.Name,
		Enabled: fragment.Enabled,
	}

	if fragment.UUID != uuid.Nil {
		result.UUID = fragment.UUID.String()
	}

	return result
}

// Report holds the results of a run in document order
type Report struct {
	Steps []StepResult `json:"steps" yaml:"steps"`
}

// Lines returns the display lines, skipping steps that produced none
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Steps))

	for _, step := range r.Steps {
		if step.Line != "" {
			lines = append(lines, step.Line)
		}
	}

	return lines
}

// Failed counts steps that could not be decompiled
func (r *Report) Failed() int {
	count := 0

	for _, step := range r.Steps {
		if step.Status == StatusSkipped || step.Status == StatusSentinel {
			count++
		}
	}

	return count
}

// Encode writes the report as text (one line per step), json or yaml
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case "", "text":
		for _, line := range r.Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

		return nil
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")

		return encoder.Encode(r)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(r); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
