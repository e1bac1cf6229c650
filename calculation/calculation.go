// Package calculation reconstructs the display text of a stored calculation.
//
// A calculation is stored both as literal text and as a chunk list. The text is
// opaque here: it is reproduced for display and never evaluated.
package calculation

import (
	"encoding/xml"

	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/xmlreader"
)

// Reconstructor rebuilds calculation source text from the element that
// contains it. Implementations must consume through the end tag of start.
type Reconstructor interface {
	Reconstruct(r *xmlreader.Reader, start xml.StartElement) (string, error)
}

// ReconstructorFunc adapts a function to the Reconstructor interface
type ReconstructorFunc func(r *xmlreader.Reader, start xml.StartElement) (string, error)

// Reconstruct calls f(r, start)
func (f ReconstructorFunc) Reconstruct(r *xmlreader.Reader, start xml.StartElement) (string, error) {
	return f(r, start)
}

// TextSource returns the stored calculation text of the first Text element
// below start. Line breaks are the ones of the stored text.
type TextSource struct{}

// Reconstruct implements Reconstructor
func (TextSource) Reconstruct(r *xmlreader.Reader, start xml.StartElement) (string, error) {
	var (
		text  string
		found bool
	)

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		if found || el.Name.Local != "Text" {
			return false, nil
		}

		s, err := r.Text(el)
		if err != nil {
			return false, err
		}

		text, found = s, true

		return true, nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}

// ChunkSource joins the chunks of the first ChunkList below start. Chunks keep
// the carriage returns the product stores, so the result matches the script
// editor byte for byte.
type ChunkSource struct{}

// Reconstruct implements Reconstructor
func (ChunkSource) Reconstruct(r *xmlreader.Reader, start xml.StartElement) (string, error) {
	var (
		chunks []byte
		found  bool
	)

	err := r.Walk(start, func(el xml.StartElement) (bool, error) {
		if found || el.Name.Local != "ChunkList" {
			return false, nil
		}

		found = true

		err := r.Walk(el, func(chunk xml.StartElement) (bool, error) {
			if chunk.Name.Local != "Chunk" {
				return false, nil
			}

			s, err := r.Text(chunk)
			if err != nil {
				return false, err
			}

			chunks = append(chunks, s...)

			return true, nil
		})

		return true, err
	})
	if err != nil {
		return "", err
	}

	return string(chunks), nil
}

// New returns the Reconstructor for a configured formula source
func New(source scriptstep.FormulaSource) Reconstructor {
	switch source {
	case scriptstep.FormulaSourceChunks:
		return ChunkSource{}
	default:
		return TextSource{}
	}
}
