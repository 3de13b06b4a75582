// Provides a minimal event scanner over SVG documents.
// The document is tokenized lazily: only element nodes and their
// attributes are surfaced, everything else is skipped.
package svgscan

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// Node is one tagged element of the source document, with its
// attributes flattened to a map keyed by local name.
type Node struct {
	Tag   string
	Attrs map[string]string
}

// Scanner walks the element nodes of an XML document in document order.
// It is a single pass: once Next has returned an error, it keeps
// returning that error.
type Scanner struct {
	dec     *xml.Decoder
	err     error
	seenTag bool
}

// New returns a Scanner reading from r. Character encodings other than
// UTF-8, as emitted by some SVG editors, are handled by the charset
// reader.
func New(r io.Reader) *Scanner {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &Scanner{dec: dec}
}

// Next returns the next element node, or io.EOF once the document is
// exhausted. A document ending before any element was seen is invalid.
func (s *Scanner) Next() (Node, error) {
	if s.err != nil {
		return Node{}, s.err
	}
	for {
		t, err := s.dec.Token()
		if err != nil {
			if err == io.EOF && !s.seenTag {
				err = errors.New("svgscan: no xml element in document")
			}
			s.err = err
			return Node{}, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			s.seenTag = true
			attrs := make(map[string]string, len(se.Attr))
			for _, attr := range se.Attr {
				attrs[attr.Name.Local] = attr.Value
			}
			return Node{Tag: se.Name.Local, Attrs: attrs}, nil
		default:
			// character data, comments, directives, end elements
		}
	}
}
