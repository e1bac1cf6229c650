package steps

import "github.com/shibukawa/scriptstep/parameter"

// InsertCurrentTime renders "Insert Current Time" steps:
// [Select label] ; [Target: t]
//
// Unlike the other insert steps the Select label is shown whenever the
// Select parameter exists, whatever its value.
type InsertCurrentTime struct {
	parser *parameter.Parser
}

// NewInsertCurrentTime creates an InsertCurrentTime decompiler
func NewInsertCurrentTime(parser *parameter.Parser) *InsertCurrentTime {
	return &InsertCurrentTime{parser: parserOrDefault(parser)}
}

func (d *InsertCurrentTime) Decompile(fragment string) (string, bool, error) {
	step, err := scan(d.parser, fragment)
	if err != nil {
		return "", false, err
	}

	if step.name == "" {
		return "", false, nil
	}

	parts := make([]string, 0, 2)

	if selected, ok := step.values.Boolean(parameter.Select); ok {
		parts = append(parts, selected.Label)
	}

	if target, ok := step.values.Target(); ok {
		parts = append(parts, targetPart(target))
	}

	return FormatLine(step.name, parts), true, nil
}
