package steps

import "github.com/shibukawa/scriptstep/parameter"

// InsertText renders "Insert Text" steps:
// [Select label if on] ; [Target: t] ; [“text” if non-empty]
type InsertText struct {
	parser *parameter.Parser
}

// NewInsertText creates an InsertText decompiler. A nil parser uses the defaults.
func NewInsertText(parser *parameter.Parser) *InsertText {
	return &InsertText{parser: parserOrDefault(parser)}
}

func (d *InsertText) Decompile(fragment string) (string, bool, error) {
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

	if text, _ := step.values.Text(); text != "" {
		parts = append(parts, Quote(text))
	}

	return FormatLine(step.name, parts), true, nil
}
