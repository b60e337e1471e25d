package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// JSONParser reads JSON objects. Nested objects are flattened into dotted names:
// {"errors": {"required": "..."}} yields "errors.required".
type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

// Parse walks the document token by token so that duplicate names keep their
// first value, which encoding/json's map decoding would not.
func (p *JSONParser) Parse(content []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Join(ErrFailedToParseJSON, ErrInvalidStructure)
	}

	table := make(map[string]string)
	if err := p.object(dec, "", table); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return table, nil
}

// object consumes members up to and including the closing brace.
func (p *JSONParser) object(dec *json.Decoder, prefix string, table map[string]string) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		name := joinKey(prefix, key)

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case json.Delim:
			if v != '{' {
				return fmt.Errorf("%w: %q holds an array", ErrInvalidStructure, name)
			}
			if err := p.object(dec, name, table); err != nil {
				return err
			}
		case string:
			addFirst(table, name, v)
		case json.Number:
			addFirst(table, name, v.String())
		case bool:
			addFirst(table, name, fmt.Sprint(v))
		case nil:
			// null values are skipped
		}
	}
	_, err := dec.Token() // closing '}'
	return err
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
