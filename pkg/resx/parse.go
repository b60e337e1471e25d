package resx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

type valueElement struct {
	Name    *string `xml:"name,attr"`
	Value   *string `xml:"value"`
	Comment string  `xml:"comment"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a document from src. src is retained by the returned Document.
func Parse(src []byte) (*Document, error) {
	skip := 0
	if bytes.HasPrefix(src, utf8BOM) {
		skip = len(utf8BOM)
	}
	dec := xml.NewDecoder(bytes.NewReader(src[skip:]))
	offset := func() int64 { return int64(skip) + dec.InputOffset() }

	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRootElement
		}
		if err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			root = start
			break
		}
	}

	doc := &Document{head: src[:offset()]}
	prev := offset()

	for {
		start := offset()
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n, err := parseChild(dec, t)
			if err != nil {
				return nil, errors.Join(ErrFailedToParse, err)
			}
			end := offset()
			n.lead = src[prev:start]
			n.body = src[start:end]
			doc.nodes = append(doc.nodes, n)
			prev = end

		case xml.EndElement:
			if bytes.HasSuffix(doc.head, []byte("/>")) {
				// <root/>: reopen it so children can be appended
				doc.head = append(append([]byte{}, doc.head[:len(doc.head)-2]...), '>')
				doc.tail = append([]byte("\n</"+root.Name.Local+">"), src[prev:]...)
				return doc, nil
			}
			doc.tail = src[prev:]
			return doc, nil
		}
	}
}

// Read parses a document from r.
func Read(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return Parse(src)
}

func parseChild(dec *xml.Decoder, start xml.StartElement) (*node, error) {
	switch start.Name.Local {
	case "data", "resheader":
	default:
		return &node{kind: kindOther}, dec.Skip()
	}

	var el valueElement
	if err := dec.DecodeElement(&el, &start); err != nil {
		return nil, err
	}
	if el.Name == nil || el.Value == nil {
		return &node{kind: kindOther}, nil
	}

	if start.Name.Local == "resheader" {
		return &node{kind: kindHeader, header: Header{Name: *el.Name, Value: *el.Value}}, nil
	}
	return &node{kind: kindRecord, record: Record{Name: *el.Name, Value: *el.Value, Comment: el.Comment}}, nil
}
