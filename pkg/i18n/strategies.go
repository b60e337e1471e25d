package i18n

import (
	"net/http"
	"strings"
)

// Result is the outcome of a culture strategy.
// Path is non-empty when the strategy wants the request path rewritten.
type Result struct {
	Culture Culture
	Path    string
}

// Strategy determines the request culture from one source.
// Returning false defers to the next strategy in the chain.
type Strategy func(r *http.Request, supported []Culture) (Result, bool)

// URLStrategy matches a culture in the first path segment and strips it.
func URLStrategy() Strategy {
	return func(r *http.Request, supported []Culture) (Result, bool) {
		c, path, ok := ExtractURLCulture(r.URL.Path, supported)
		if !ok {
			return Result{}, false
		}
		return Result{Culture: c, Path: path}, true
	}
}

// CookieStrategy reads the culture from the named cookie.
func CookieStrategy(name string) Strategy {
	return func(r *http.Request, supported []Culture) (Result, bool) {
		if name == "" {
			return Result{}, false
		}
		cookie, err := r.Cookie(name)
		if err != nil {
			return Result{}, false
		}
		return match(cookie.Value, supported)
	}
}

// QueryStrategy reads the culture from the named query parameter.
func QueryStrategy(name string) Strategy {
	return func(r *http.Request, supported []Culture) (Result, bool) {
		if name == "" {
			return Result{}, false
		}
		return match(r.URL.Query().Get(name), supported)
	}
}

// AcceptLanguageStrategy negotiates against the Accept-Language header.
func AcceptLanguageStrategy() Strategy {
	return func(r *http.Request, supported []Culture) (Result, bool) {
		c, ok := MatchAcceptLanguage(r.Header.Get("Accept-Language"), supported)
		if !ok {
			return Result{}, false
		}
		return Result{Culture: c}, true
	}
}

func match(value string, supported []Culture) (Result, bool) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxCultureNameLength {
		return Result{}, false
	}
	c, ok := Find(supported, value)
	if !ok {
		return Result{}, false
	}
	return Result{Culture: c}, true
}
