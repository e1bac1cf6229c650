package scriptstep

import (
	"errors"
	"fmt"
)

// Common errors used throughout the scriptstep packages
var (
	// Structural parse errors

	// ErrMissingAttribute is returned when a required attribute is absent from a start tag.
	ErrMissingAttribute = errors.New("missing attribute")
	// ErrUnknownBooleanKind indicates a Boolean parameter carried an unrecognized numeric id.
	ErrUnknownBooleanKind = errors.New("unknown boolean id")
	// ErrUnknownParameterType indicates a Parameter element declared a type outside the known vocabulary.
	ErrUnknownParameterType = errors.New("unknown parameter type")
	// ErrUnexpectedEOF is returned when the fragment ends before an element was closed.
	ErrUnexpectedEOF = errors.New("unexpected end of file")
	// ErrMalformedXML wraps tokenizer failures.
	ErrMalformedXML = errors.New("malformed xml")

	// Script errors

	// ErrUnsupportedStep indicates no decompiler exists for a step kind.
	ErrUnsupportedStep = errors.New("unsupported script step")
	// ErrNoSteps indicates a document contained no Step elements.
	ErrNoSteps = errors.New("no script steps found")
	// ErrInvalidFilter indicates a step filter expression failed to compile or did not yield a bool.
	ErrInvalidFilter = errors.New("invalid step filter")
	// ErrInvalidStepID is returned for step type ids that are not decimal numbers.
	ErrInvalidStepID = errors.New("invalid step id")
)

// ParseErrorKind classifies structural parse failures
type ParseErrorKind int

const (
	ParseErrorUnknown ParseErrorKind = iota
	MissingAttribute
	UnknownBooleanKind
	UnknownParameterType
	UnexpectedEOF
	MalformedXML
)

// String returns the string representation of ParseErrorKind
func (k ParseErrorKind) String() string {
	switch k {
	case MissingAttribute:
		return "MissingAttribute"
	case UnknownBooleanKind:
		return "UnknownBooleanKind"
	case UnknownParameterType:
		return "UnknownParameterType"
	case UnexpectedEOF:
		return "UnexpectedEof"
	case MalformedXML:
		return "MalformedXml"
	default:
		return "Unknown"
	}
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case MissingAttribute:
		return ErrMissingAttribute
	case UnknownBooleanKind:
		return ErrUnknownBooleanKind
	case UnknownParameterType:
		return ErrUnknownParameterType
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case MalformedXML:
		return ErrMalformedXML
	default:
		return nil
	}
}

// ParseError is a structural failure raised while reading a step fragment.
// Detail carries the offending attribute name, id or type value.
type ParseError struct {
	Kind   ParseErrorKind
	Detail string
	Err    error // underlying tokenizer error, if any
}

// NewParseError creates a ParseError of the given kind
func NewParseError(kind ParseErrorKind, detail string) *ParseError {
	return &ParseError{Kind: kind, Detail: detail}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	msg := "parse error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}

	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Unwrap exposes the kind sentinel and the underlying error to errors.Is / errors.As
func (e *ParseError) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}
