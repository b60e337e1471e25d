package catalog

import (
	"path"
	"strings"
)

// Parser turns the content of one resource file into a name to value table.
// When a name occurs more than once, the first occurrence wins.
type Parser interface {
	Parse(content []byte) (map[string]string, error)

	// SupportsFileExtension reports whether the parser handles ext,
	// given with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// DefaultParsers handles resx, json, yaml and yml files.
func DefaultParsers() []Parser {
	return []Parser{NewResxParser(), NewJSONParser(), NewYAMLParser()}
}

// parserFor returns the first parser supporting the extension of filename.
func parserFor(parsers []Parser, filename string) (Parser, string) {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return nil, ""
	}
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p, ext
		}
	}
	return nil, ""
}

// addFirst stores value under name unless name is already present.
func addFirst(table map[string]string, name, value string) {
	if _, exists := table[name]; !exists {
		table[name] = value
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
