package parameter

import (
	"encoding/xml"

	"github.com/shibukawa/scriptstep/attributes"
	"github.com/shibukawa/scriptstep/xmlreader"
)

// Target is where a step writes its result: a field or a variable
type Target interface {
	String() string
	isTarget()
}

// FieldReference targets a field of a table occurrence
type FieldReference struct {
	Name  string
	Table string
	// Repetition is display text: a literal number or a reconstructed calculation
	Repetition string
}

// Variable targets a script or global variable
type Variable struct {
	Name       string
	Repetition string
}

func (FieldReference) isTarget() {}
func (Variable) isTarget()       {}

// String renders table::field, with [rep] for non-default repetitions
func (f FieldReference) String() string {
	return f.Table + "::" + f.Name + repetitionSuffix(f.Repetition)
}

// String renders the variable name, with [rep] for non-default repetitions
func (v Variable) String() string {
	return v.Name + repetitionSuffix(v.Repetition)
}

// repetitionSuffix hides the default repetition ("" or "1")
func repetitionSuffix(repetition string) string {
	if repetition == "" || repetition == "1" {
		return ""
	}

	return "[" + repetition + "]"
}

// ParseTarget reads the target inside start (normally the <Parameter> element)
// and consumes through the end tag of start. The variant is decided after the
// whole element is read because TableOccurrenceReference may follow the field.
func (p *Parser) ParseTarget(r *xmlreader.Reader, start xml.StartElement) (Target, error) {
	var (
		name       string
		table      string
		repetition string
		isField    bool
	)

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		var err error

		switch el.Name.Local {
		case "FieldReference":
			isField = true
			name, err = attributes.Require(el, "name")
		case "Variable":
			name, err = attributes.Require(el, "value")
		case "TableOccurrenceReference":
			isField = true
			table, err = attributes.Require(el, "name")
		case "repetition":
			repetition, err = p.parseRepetition(r, el)
			return true, err
		}

		return false, err
	})
	if err != nil {
		return nil, err
	}

	if isField {
		return FieldReference{Name: name, Table: table, Repetition: repetition}, nil
	}

	return Variable{Name: name, Repetition: repetition}, nil
}

// parseRepetition returns the literal value attribute, or the reconstructed
// calculation nested in the element when there is none
func (p *Parser) parseRepetition(r *xmlreader.Reader, el xml.StartElement) (string, error) {
	if value, ok := attributes.Get(el, "value"); ok {
		return value, r.Walk(el, nil)
	}

	return p.formula.Reconstruct(r, el)
}
