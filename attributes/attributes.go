// Package attributes reads named attributes from XML start tags.
package attributes

import (
	"encoding/xml"

	"github.com/shibukawa/scriptstep"
)

// Get returns the value of the attribute with the given local name
func Get(el xml.StartElement, name string) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

// GetOr returns the attribute value or fallback when the attribute is absent
func GetOr(el xml.StartElement, name, fallback string) string {
	if value, ok := Get(el, name); ok {
		return value
	}

	return fallback
}

// Require returns the attribute value or a MissingAttribute parse error
func Require(el xml.StartElement, name string) (string, error) {
	value, ok := Get(el, name)
	if !ok {
		return "", scriptstep.NewParseError(scriptstep.MissingAttribute, name)
	}

	return value, nil
}
