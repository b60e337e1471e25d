package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the default request and response header.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures the middleware built by New.
type Option func(*middleware)

// WithHeader reads and writes the id under name instead of Header.
func WithHeader(name string) Option {
	return func(m *middleware) {
		if name != "" {
			m.header = name
		}
	}
}

// WithGenerator replaces uuid.NewString as the source of fresh ids.
func WithGenerator(gen func() string) Option {
	return func(m *middleware) {
		if gen != nil {
			m.generate = gen
		}
	}
}

type middleware struct {
	header   string
	generate func() string
}

// New returns middleware that reuses a well-formed incoming id or generates one,
// echoes it in the response header and stores it in the request context.
func New(opts ...Option) func(http.Handler) http.Handler {
	m := &middleware{header: Header, generate: uuid.NewString}
	for _, opt := range opts {
		opt(m)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(m.header)
			if !valid(id) {
				id = m.generate()
			}
			w.Header().Set(m.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with the default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func valid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}
