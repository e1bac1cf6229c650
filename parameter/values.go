package parameter

import (
	"encoding/xml"
	"iter"
	"slices"

	"github.com/shibukawa/scriptstep/xmlreader"
)

// Values is the ordered parameter list of one step. Duplicates are kept;
// the accessors return the first match in document order.
type Values struct {
	params []Parameter
}

// NewValues creates a Values holding params in order
func NewValues(params ...Parameter) *Values {
	return &Values{params: params}
}

// ParseValues reads every <Parameter> child of an opened <ParameterValues>
// element and consumes through its end tag. Other children are skipped.
// The first failing parameter aborts the whole block.
func (p *Parser) ParseValues(r *xmlreader.Reader, start xml.StartElement) (*Values, error) {
	values := NewValues()

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		if el.Name.Local != "Parameter" {
			return true, r.Skip()
		}

		param, err := p.ParseParameter(r, el)
		if err != nil {
			return true, err
		}

		values.Add(param)

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Add appends a parameter
func (v *Values) Add(param Parameter) {
	v.params = append(v.params, param)
}

// Len returns the number of parameters
func (v *Values) Len() int {
	return len(v.params)
}

// All iterates the parameters in document order
func (v *Values) All() iter.Seq2[int, Parameter] {
	return slices.All(v.params)
}

// Text returns the first Text parameter
func (v *Values) Text() (string, bool) {
	for _, param := range v.params {
		if text, ok := param.(TextParameter); ok {
			return text.Value, true
		}
	}

	return "", false
}

// Target returns the first Target parameter
func (v *Values) Target() (Target, bool) {
	for _, param := range v.params {
		if target, ok := param.(TargetParameter); ok {
			return target.Value, true
		}
	}

	return nil, false
}

// Calculation returns the first Calculation parameter
func (v *Values) Calculation() (string, bool) {
	for _, param := range v.params {
		if calc, ok := param.(CalculationParameter); ok {
			return calc.Value, true
		}
	}

	return "", false
}

// Boolean returns the first Boolean parameter of the given kind
func (v *Values) Boolean(kind BooleanKind) (Boolean, bool) {
	for _, param := range v.params {
		if b, ok := param.(BooleanParameter); ok && b.Value.Kind == kind {
			return b.Value, true
		}
	}

	return Boolean{}, false
}
