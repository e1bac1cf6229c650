package xmlreader

import (
	"encoding/xml"
	"errors"
	"io"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/scriptstep"
)

func firstStart(t *testing.T, r *Reader) xml.StartElement {
	t.Helper()

	for {
		tok, err := r.Token()
		assert.NoError(t, err)

		if el, ok := tok.(xml.StartElement); ok {
			return el
		}
	}
}

func TestReader_TokenAndEOF(t *testing.T) {
	r := New(`<a b="c"/>`)

	tok, err := r.Token()
	assert.NoError(t, err)
	el, ok := tok.(xml.StartElement)
	assert.True(t, ok)
	assert.Equal(t, "a", el.Name.Local)

	tok, err = r.Token()
	assert.NoError(t, err)
	_, ok = tok.(xml.EndElement)
	assert.True(t, ok)

	_, err = r.Token()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReader_NextReportsUnexpectedEOF(t *testing.T) {
	r := New(`<a/>`)
	_ = firstStart(t, r)

	_, err := r.Next()
	assert.NoError(t, err)

	_, err = r.Next()
	assert.True(t, errors.Is(err, scriptstep.ErrUnexpectedEOF))
}

func TestReader_TruncatedInputIsUnexpectedEOF(t *testing.T) {
	r := New(`<a><b>`)
	start := firstStart(t, r)

	err := r.Walk(start, nil)
	assert.True(t, errors.Is(err, scriptstep.ErrUnexpectedEOF))
}

func TestReader_MalformedXML(t *testing.T) {
	r := New(`<a></b>`)
	start := firstStart(t, r)

	err := r.Walk(start, nil)
	assert.True(t, errors.Is(err, scriptstep.ErrMalformedXML))
}

func TestReader_Peek(t *testing.T) {
	r := New(`<a><b/></a>`)
	_ = firstStart(t, r)

	peeked, err := r.Peek()
	assert.NoError(t, err)

	again, err := r.Peek()
	assert.NoError(t, err)
	assert.Equal(t, peeked, again)

	tok, err := r.Token()
	assert.NoError(t, err)
	assert.Equal(t, peeked, tok)
	assert.Equal(t, "b", tok.(xml.StartElement).Name.Local)
}

func TestReader_Walk(t *testing.T) {
	xmlText := `<root><x id="1"><y/></x><z/></root><after/>`
	r := New(xmlText)
	start := firstStart(t, r)

	var seen []string

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		seen = append(seen, el.Name.Local)
		return false, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, seen)

	// cursor stops right after </root>
	next := firstStart(t, r)
	assert.Equal(t, "after", next.Name.Local)
}

func TestReader_WalkWithConsumingVisitor(t *testing.T) {
	r := New(`<root><x><y/></x><z/></root>`)
	start := firstStart(t, r)

	var seen []string

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		seen = append(seen, el.Name.Local)
		if el.Name.Local == "x" {
			return true, r.Skip()
		}

		return false, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "z"}, seen)
}

func TestReader_WalkPropagatesVisitorError(t *testing.T) {
	r := New(`<root><x/></root>`)
	start := firstStart(t, r)
	boom := errors.New("boom")

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		return false, boom
	})
	assert.True(t, errors.Is(err, boom))
}

func TestReader_Text(t *testing.T) {
	r := New("<Text><![CDATA[$a\n\t+\n$b]]></Text>")
	start := firstStart(t, r)

	text, err := r.Text(start)
	assert.NoError(t, err)
	assert.Equal(t, "$a\n\t+\n$b", text)
}

func TestReader_TextKeepsEscapedCarriageReturn(t *testing.T) {
	r := New(`<Chunk>&#13;+&#13;</Chunk>`)
	start := firstStart(t, r)

	text, err := r.Text(start)
	assert.NoError(t, err)
	assert.Equal(t, "\r+\r", text)
}

func TestReader_SetStrict(t *testing.T) {
	t.Run("strict rejects unknown entities", func(t *testing.T) {
		r := New(`<a>&nbsp;</a>`)
		start := firstStart(t, r)

		_, err := r.Text(start)
		assert.True(t, errors.Is(err, scriptstep.ErrMalformedXML))
	})

	t.Run("lenient keeps unknown entities as text", func(t *testing.T) {
		r := New(`<a>&nbsp;</a><b>x</b>`)
		r.SetStrict(false)
		start := firstStart(t, r)

		text, err := r.Text(start)
		assert.NoError(t, err)
		assert.Equal(t, "&nbsp;", text)
	})

	t.Run("strict again after lenient", func(t *testing.T) {
		r := New(`<a>&nbsp;</a><b>&nbsp;</b>`)
		r.SetStrict(false)
		start := firstStart(t, r)
		_, err := r.Text(start)
		assert.NoError(t, err)

		r.SetStrict(true)
		start = firstStart(t, r)
		_, err = r.Text(start)
		assert.True(t, errors.Is(err, scriptstep.ErrMalformedXML))
	})
}
