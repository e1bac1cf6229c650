// Package parameter parses the typed parameter list of a script step.
package parameter

import (
	"encoding/xml"
	"fmt"

	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/attributes"
	"github.com/shibukawa/scriptstep/calculation"
	"github.com/shibukawa/scriptstep/xmlreader"
)

// Parameter is one typed entry of a ParameterValues block. The concrete type
// is one of BooleanParameter, TargetParameter, TextParameter or
// CalculationParameter.
type Parameter interface {
	isParameter()
}

// BooleanParameter wraps a Parameter of type "Boolean"
type BooleanParameter struct {
	Value Boolean
}

// TargetParameter wraps a Parameter of type "Target"
type TargetParameter struct {
	Value Target
}

// TextParameter wraps a Parameter of type "Text"
type TextParameter struct {
	Value string
}

// CalculationParameter wraps a Parameter of type "Calculation"
type CalculationParameter struct {
	Value string
}

func (BooleanParameter) isParameter()     {}
func (TargetParameter) isParameter()      {}
func (TextParameter) isParameter()        {}
func (CalculationParameter) isParameter() {}

// Parser parses parameters. It holds no per-fragment state and may be shared.
type Parser struct {
	formula calculation.Reconstructor
}

// NewParser creates a Parser. A nil formula falls back to calculation.TextSource.
func NewParser(formula calculation.Reconstructor) *Parser {
	if formula == nil {
		formula = calculation.TextSource{}
	}

	return &Parser{formula: formula}
}

// ParseParameter dispatches an opened <Parameter> element on its type
// attribute and consumes through its end tag.
func (p *Parser) ParseParameter(r *xmlreader.Reader, start xml.StartElement) (Parameter, error) {
	parameterType, err := attributes.Require(start, "type")
	if err != nil {
		return nil, err
	}

	var param Parameter

	switch parameterType {
	case "Boolean":
		var b Boolean

		b, err = ParseBoolean(r, start)
		param = BooleanParameter{Value: b}
	case "Target":
		var target Target

		target, err = p.ParseTarget(r, start)
		param = TargetParameter{Value: target}
	case "Text":
		var text string

		text, err = parseText(r, start)
		param = TextParameter{Value: text}
	case "Calculation":
		var calc string

		calc, err = p.formula.Reconstruct(r, start)
		param = CalculationParameter{Value: calc}
	default:
		// Comment, Options, URL, UniversalPathList, id and size are known
		// to exist but not implemented yet
		return nil, scriptstep.NewParseError(scriptstep.UnknownParameterType, parameterType)
	}

	if err != nil {
		return nil, fmt.Errorf("%s parameter: %w", parameterType, err)
	}

	return param, nil
}

// parseText returns the value attribute of the nested Text element, or an
// empty string when it has none
func parseText(r *xmlreader.Reader, start xml.StartElement) (string, error) {
	var (
		text  string
		found bool
	)

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		if !found && el.Name.Local == "Text" {
			text = attributes.GetOr(el, "value", "")
			found = true
		}

		return false, nil
	})

	return text, err
}
