package render

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// DocText normalizes a documentation string for terminal display. HTML
// documentation is converted to markdown; every other documentation format
// is passed through untouched. Conversion failures fall back to the raw doc.
func DocText(doc, docFormat string) string {
	if docFormat != "HTML" {
		return doc
	}
	converted, err := htmltomarkdown.ConvertString(doc)
	if err != nil {
		return doc
	}
	return converted
}
