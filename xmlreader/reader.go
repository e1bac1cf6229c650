// Package xmlreader provides the streaming cursor the step parsers walk over.
// It wraps encoding/xml.Decoder with one token of lookahead and classifies
// tokenizer failures into scriptstep parse errors.
package xmlreader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/shibukawa/scriptstep"
)

// Reader is a cursor over one XML fragment. It is not safe for concurrent use;
// create one Reader per fragment.
type Reader struct {
	dec *xml.Decoder

	peeked  xml.Token
	peekErr error
	hasPeek bool
}

// New creates a Reader over an in-memory fragment
func New(fragment string) *Reader {
	return NewFromReader(strings.NewReader(fragment))
}

// NewBytes creates a Reader over a byte slice
func NewBytes(fragment []byte) *Reader {
	return NewFromReader(bytes.NewReader(fragment))
}

// NewFromReader creates a Reader over an arbitrary source
func NewFromReader(r io.Reader) *Reader {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	return &Reader{dec: dec}
}

// SetStrict switches the tokenizer between strict and lenient mode for the
// tokens read from now on. Lenient mode passes unknown entities through as
// text and closes mismatched end tags against the open element.
func (r *Reader) SetStrict(strict bool) {
	r.dec.Strict = strict
}

// Token returns the next token. At the end of input it returns io.EOF.
func (r *Reader) Token() (xml.Token, error) {
	if r.hasPeek {
		tok, err := r.peeked, r.peekErr
		r.peeked, r.peekErr, r.hasPeek = nil, nil, false

		return tok, err
	}

	return r.read()
}

// Next is Token for callers inside an element: running out of input is an
// UnexpectedEOF parse error rather than io.EOF.
func (r *Reader) Next() (xml.Token, error) {
	tok, err := r.Token()
	if errors.Is(err, io.EOF) {
		return nil, scriptstep.NewParseError(scriptstep.UnexpectedEOF, "")
	}

	return tok, err
}

// Peek returns the next token without consuming it
func (r *Reader) Peek() (xml.Token, error) {
	if !r.hasPeek {
		r.peeked, r.peekErr = r.read()
		r.hasPeek = true
	}

	return r.peeked, r.peekErr
}

func (r *Reader) read() (xml.Token, error) {
	tok, err := r.dec.Token()
	if err == io.EOF {
		return nil, io.EOF
	}

	if err != nil {
		return nil, classify(err)
	}

	return xml.CopyToken(tok), nil
}

// classify maps decoder errors onto parse error kinds. The decoder reports input
// ending inside an open element as a syntax error, which is an UnexpectedEOF here.
func classify(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Msg == "unexpected EOF" {
		return &scriptstep.ParseError{Kind: scriptstep.UnexpectedEOF, Err: err}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return &scriptstep.ParseError{Kind: scriptstep.UnexpectedEOF, Err: err}
	}

	return &scriptstep.ParseError{Kind: scriptstep.MalformedXML, Err: err}
}

// VisitFunc is called for every start element nested below the element being
// walked. Returning consumed=true tells Walk that the callback has already read
// the element through its end tag.
type VisitFunc func(el xml.StartElement) (consumed bool, err error)

// Walk visits the descendants of start and returns once the end tag matching
// start has been consumed. start itself must already have been read.
func (r *Reader) Walk(start xml.StartElement, visit VisitFunc) error {
	depth := 0

	for {
		tok, err := r.Next()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			consumed := false
			if visit != nil {
				consumed, err = visit(t)
				if err != nil {
					return err
				}
			}

			if !consumed {
				depth++
			}
		case xml.EndElement:
			// the strict decoder guarantees the end tag at depth 0 closes start
			if depth == 0 {
				return nil
			}

			depth--
		}
	}
}

// Skip consumes the remainder of the element whose start tag was read last
func (r *Reader) Skip() error {
	return r.Walk(xml.StartElement{}, nil)
}

// Text returns the character data (text and CDATA) contained in start, exactly
// as decoded, and consumes through its end tag.
func (r *Reader) Text(start xml.StartElement) (string, error) {
	var sb strings.Builder

	depth := 0

	for {
		tok, err := r.Next()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String(), nil
			}

			depth--
		}
	}
}
