package i18n

import (
	"context"
	"strings"
)

// ExtractURLCulture looks for a supported culture in the first path segment.
// On a match it returns the culture and the path without that segment
// ("/fr-FR/products/7" -> "/products/7", "/fr-FR" -> "/").
// Empty segments are ignored, so the root path never matches.
func ExtractURLCulture(path string, supported []Culture) (Culture, string, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return Invariant, path, false
	}

	c, ok := Find(supported, segments[0])
	if !ok {
		return Invariant, path, false
	}

	if len(segments) == 1 {
		return c, "/", true
	}
	return c, "/" + strings.Join(segments[1:], "/"), true
}

// LocalizedPath prefixes an application path with the request culture so generated
// links keep the visitor in the same culture. Paths are returned untouched when the
// request culture is the default one or no culture is set.
func LocalizedPath(ctx context.Context, path string, defaultCulture Culture) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		return path
	}
	if !HasCulture(ctx) {
		return path
	}

	c := FromContext(ctx)
	if c.IsInvariant() || c.Equal(defaultCulture) {
		return path
	}
	if path == "/" {
		return "/" + c.Name()
	}
	return "/" + c.Name() + path
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
