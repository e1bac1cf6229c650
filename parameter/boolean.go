package parameter

import (
	"encoding/xml"

	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/attributes"
	"github.com/shibukawa/scriptstep/xmlreader"
)

// BooleanKind identifies a boolean switch by the numeric id the product stores
type BooleanKind int

const (
	// Select is stored as id 4096
	Select BooleanKind = iota + 1
	// VerifySSLCertificates is stored as id 268435456
	VerifySSLCertificates
	// WithDialog is stored as id 128
	WithDialog
)

var booleanKindsByID = map[string]BooleanKind{
	"4096":      Select,
	"268435456": VerifySSLCertificates,
	"128":       WithDialog,
}

var booleanIDs = map[BooleanKind]string{
	Select:                "4096",
	VerifySSLCertificates: "268435456",
	WithDialog:            "128",
}

// BooleanKindFromID resolves a numeric id. Unrecognized ids are an error.
func BooleanKindFromID(id string) (BooleanKind, error) {
	kind, ok := booleanKindsByID[id]
	if !ok {
		return 0, scriptstep.NewParseError(scriptstep.UnknownBooleanKind, id)
	}

	return kind, nil
}

// ID returns the numeric id of the kind as stored in XML
func (k BooleanKind) ID() string {
	return booleanIDs[k]
}

// String returns the string representation of BooleanKind
func (k BooleanKind) String() string {
	switch k {
	case Select:
		return "Select"
	case VerifySSLCertificates:
		return "VerifySslCertificates"
	case WithDialog:
		return "WithDialog"
	default:
		return "Unknown"
	}
}

// Boolean is a named switch of a step. Label is the display text from the
// element's type attribute, which may be localized.
type Boolean struct {
	Kind  BooleanKind
	Value bool
	Label string
}

// NewBoolean creates a Boolean
func NewBoolean(kind BooleanKind, value bool, label string) Boolean {
	return Boolean{Kind: kind, Value: value, Label: label}
}

// LabelIfTrue returns the label only when the switch is on
func (b Boolean) LabelIfTrue() (string, bool) {
	if !b.Value {
		return "", false
	}

	return b.Label, true
}

// ParseBoolean reads a Boolean element. start is either the wrapping
// <Parameter type="Boolean"> or the <Boolean> element itself; the reader is
// left after the end tag of start.
func ParseBoolean(r *xmlreader.Reader, start xml.StartElement) (Boolean, error) {
	if start.Name.Local == "Boolean" {
		b, err := booleanFromElement(start)
		if err != nil {
			return Boolean{}, err
		}

		return b, r.Walk(start, nil)
	}

	var (
		b     Boolean
		found bool
	)

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		if found || el.Name.Local != "Boolean" {
			return false, nil
		}

		var err error

		b, err = booleanFromElement(el)
		found = err == nil

		return false, err
	})
	if err != nil {
		return Boolean{}, err
	}

	if !found {
		// the parameter has no <Boolean> child at all
		return Boolean{}, scriptstep.NewParseError(scriptstep.MissingAttribute, "Boolean")
	}

	return b, nil
}

func booleanFromElement(el xml.StartElement) (Boolean, error) {
	id, err := attributes.Require(el, "id")
	if err != nil {
		return Boolean{}, err
	}

	kind, err := BooleanKindFromID(id)
	if err != nil {
		return Boolean{}, err
	}

	value, err := attributes.Require(el, "value")
	if err != nil {
		return Boolean{}, err
	}

	label, err := attributes.Require(el, "type")
	if err != nil {
		return Boolean{}, err
	}

	return NewBoolean(kind, value == "True", label), nil
}
