// Package steps renders single script steps as the one-line text the product
// shows in its script editor, for example
//
//	Insert Text [ Select ; Target: $hello ; “a” ]
package steps

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shibukawa/scriptstep/attributes"
	"github.com/shibukawa/scriptstep/parameter"
	"github.com/shibukawa/scriptstep/xmlreader"
)

// Decompiler turns the XML of one <Step> element into its display line.
// ok is false when the fragment holds no named step. Implementations are
// stateless and safe for concurrent use.
type Decompiler interface {
	Decompile(fragment string) (line string, ok bool, err error)
}

// StepError reports a structural failure inside one step so that callers can
// skip that step and keep going.
type StepError struct {
	Name string
	Err  error
}

func (e *StepError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("script step: %v", e.Err)
	}

	return fmt.Sprintf("script step %q: %v", e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// scanned is what the outer scan collects from a fragment
type scanned struct {
	name   string
	values *parameter.Values
}

// scan looks for the Step name and the ParameterValues block. The outer scan
// runs lenient so that stray entities in other step children do not stop it;
// the parameter block itself is read strictly. A tokenizer error that cannot be
// recovered is a *StepError while a named step still lacks its parameters, and
// ends the scan quietly once they have been read.
func scan(parser *parameter.Parser, fragment string) (scanned, error) {
	result := scanned{values: parameter.NewValues()}
	r := xmlreader.New(fragment)
	r.SetStrict(false)

	parsed := false

	for {
		tok, err := r.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			if result.name != "" && !parsed {
				return result, &StepError{Name: result.name, Err: err}
			}

			break
		}

		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch el.Name.Local {
		case "Step":
			result.name = attributes.GetOr(el, "name", "")
		case "ParameterValues":
			r.SetStrict(true)
			values, err := parser.ParseValues(r, el)
			r.SetStrict(false)

			if err != nil {
				return result, &StepError{Name: result.name, Err: err}
			}

			result.values = values
			parsed = true
		}
	}

	return result, nil
}

// FormatLine renders "name []" or "name [ a ; b ]"
func FormatLine(name string, parts []string) string {
	if len(parts) == 0 {
		return name + " []"
	}

	return name + " [ " + strings.Join(parts, " ; ") + " ]"
}

// Quote wraps literal text in curly quotes without escaping anything
func Quote(text string) string {
	return "“" + text + "”"
}

func targetPart(target parameter.Target) string {
	return "Target: " + target.String()
}

func parserOrDefault(parser *parameter.Parser) *parameter.Parser {
	if parser == nil {
		return parameter.NewParser(nil)
	}

	return parser
}

// IsStepError reports whether err came from inside a step's parameter block
func IsStepError(err error) bool {
	var stepErr *StepError
	return errors.As(err, &stepErr)
}
