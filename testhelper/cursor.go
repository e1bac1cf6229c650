// Package testhelper holds helpers shared by the parser tests.
package testhelper

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/scriptstep/xmlreader"
)

// OpenFirst returns a reader positioned right after the first start tag of src
func OpenFirst(t *testing.T, src string) (*xmlreader.Reader, xml.StartElement) {
	t.Helper()

	r := xmlreader.New(strings.TrimSpace(src))

	for {
		tok, err := r.Token()
		assert.NoError(t, err)

		if el, ok := tok.(xml.StartElement); ok {
			return r, el
		}
	}
}

// AssertNextStart reads up to the next start tag and checks its name
func AssertNextStart(t *testing.T, r *xmlreader.Reader, name string) {
	t.Helper()

	for {
		tok, err := r.Token()
		assert.NoError(t, err)

		if el, ok := tok.(xml.StartElement); ok {
			assert.Equal(t, name, el.Name.Local)
			return
		}
	}
}

// AssertDrained checks that nothing but whitespace follows the cursor
func AssertDrained(t *testing.T, r *xmlreader.Reader) {
	t.Helper()

	for {
		tok, err := r.Token()
		if err != nil {
			return
		}

		if data, ok := tok.(xml.CharData); ok && strings.TrimSpace(string(data)) == "" {
			continue
		}

		t.Fatalf("unexpected token after element: %#v", tok)
	}
}
