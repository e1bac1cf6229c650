// Package script decompiles whole scripts: it splits a document into step
// fragments, routes each fragment to the decompiler for its kind and collects
// the lines into a report.
package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/catalog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Fragment is one <Step> element cut out of a larger document
type Fragment struct {
	Index   int
	ID      uint32
	Kind    catalog.StepKind
	Name    string
	Enabled bool
	UUID    uuid.UUID
	// XML is the standalone serialization of the Step element
	XML string
}

// Extract finds every Step element of a script, clipboard or DDR document in
// document order. UTF-16 input with a byte order mark is accepted.
func Extract(data []byte) ([]Fragment, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	doc.ReadSettings.CharsetReader = charsetReader

	if err := doc.ReadFromBytes(decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", scriptstep.ErrMalformedXML, err)
	}

	elements := doc.FindElements("//Step")
	if len(elements) == 0 {
		return nil, scriptstep.ErrNoSteps
	}

	fragments := make([]Fragment, 0, len(elements))

	for position, el := range elements {
		fragment, err := newFragment(position, el)
		if err != nil {
			return nil, err
		}

		fragments = append(fragments, fragment)
	}

	return fragments, nil
}

func newFragment(position int, el *etree.Element) (Fragment, error) {
	idText := el.SelectAttrValue("id", "")

	kind, err := catalog.ParseID(idText)
	if err != nil {
		return Fragment{}, fmt.Errorf("step %d: %w", position, err)
	}

	index := position
	if text := el.SelectAttrValue("index", ""); text != "" {
		if n, err := strconv.Atoi(text); err == nil {
			index = n
		}
	}

	id, _ := strconv.ParseUint(idText, 10, 32)

	xmlText, err := serialize(el)
	if err != nil {
		return Fragment{}, fmt.Errorf("step %d: %w", position, err)
	}

	return Fragment{
		Index:   index,
		ID:      uint32(id),
		Kind:    kind,
		Name:    el.SelectAttrValue("name", ""),
		Enabled: el.SelectAttrValue("enable", "True") != "False",
		UUID:    stepUUID(el),
		XML:     xmlText,
	}, nil
}

// stepUUID returns the UUID child, or uuid.Nil when it is absent or malformed
func stepUUID(el *etree.Element) uuid.UUID {
	child := el.SelectElement("UUID")
	if child == nil {
		return uuid.Nil
	}

	id, err := uuid.Parse(strings.TrimSpace(child.Text()))
	if err != nil {
		return uuid.Nil
	}

	return id
}

// serialize writes el as its own document. Canonical escaping keeps carriage
// returns as character references so they survive the next parse.
func serialize(el *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalAttrVal = true
	doc.WriteSettings.CanonicalText = true
	doc.SetRoot(el.Copy())

	return doc.WriteToString()
}

// charsetReader handles the encoding declared in the XML prolog. UTF-16
// input has already been transcoded by the BOM decoder at this point.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "utf-16", "utf-16le", "utf-16be", "utf16":
		return input, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}

	return transform.NewReader(input, enc.NewDecoder()), nil
}
