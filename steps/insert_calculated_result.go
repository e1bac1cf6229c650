package steps

import "github.com/shibukawa/scriptstep/parameter"

// InsertCalculatedResult renders "Insert Calculated Result" steps:
// [Select label if on] ; [Target: t] ; [calculation if non-empty]
//
// The Select part is the Boolean's own label, so localized exports render
// their localized word (e.g. "Auswahl") rather than a fixed "Select", as
// InsertText does.
type InsertCalculatedResult struct {
	parser *parameter.Parser
}

// NewInsertCalculatedResult creates an InsertCalculatedResult decompiler
func NewInsertCalculatedResult(parser *parameter.Parser) *InsertCalculatedResult {
	return &InsertCalculatedResult{parser: parserOrDefault(parser)}
}

func (d *InsertCalculatedResult) Decompile(fragment string) (string, bool, error) {
	step, err := scan(d.parser, fragment)
	if err != nil {
		return "", false, err
	}

	if step.name == "" {
		return "", false, nil
	}

	parts := make([]string, 0, 3)

	if selected, ok := step.values.Boolean(parameter.Select); ok {
		if label, ok := selected.LabelIfTrue(); ok {
			parts = append(parts, label)
		}
	}

	if target, ok := step.values.Target(); ok {
		parts = append(parts, targetPart(target))
	}

	// calculations are shown unquoted, whitespace untouched
	if calc, _ := step.values.Calculation(); calc != "" {
		parts = append(parts, calc)
	}

	return FormatLine(step.name, parts), true, nil
}
