package i18n

import (
	"net/http"
)

// Config holds the host-supplied culture set.
type Config struct {
	Cultures       []string `env:"I18N_CULTURES" envSeparator:"," envDefault:"en-US"`
	DefaultCulture string   `env:"I18N_DEFAULT_CULTURE" envDefault:"en-US"`
	CookieName     string   `env:"I18N_COOKIE_NAME" envDefault:"culture"`
	QueryParamName string   `env:"I18N_QUERY_PARAM" envDefault:"culture"`
}

// Options configures the request culture middleware.
type Options struct {
	// Supported lists the cultures a request may select, in preference order.
	Supported []Culture
	// Default is used when no strategy matches. Zero value means Supported[0].
	Default Culture
	// Strategies run in order; nil means DefaultStrategies.
	Strategies []Strategy
}

// DefaultStrategies is URL segment, cookie, query parameter, Accept-Language.
func DefaultStrategies(cookieName, queryParam string) []Strategy {
	return []Strategy{
		URLStrategy(),
		CookieStrategy(cookieName),
		QueryStrategy(queryParam),
		AcceptLanguageStrategy(),
	}
}

// OptionsFromConfig parses the configured culture names.
func OptionsFromConfig(cfg Config) (Options, error) {
	supported, err := ParseList(cfg.Cultures...)
	if err != nil {
		return Options{}, err
	}
	def, err := Parse(cfg.DefaultCulture)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Supported:  supported,
		Default:    def,
		Strategies: DefaultStrategies(cfg.CookieName, cfg.QueryParamName),
	}, nil
}

// Middleware determines the request culture and stores it in the request context.
// When the URL strategy wins, the culture segment is removed from the request path
// before the next handler (and router) sees it.
func Middleware(opts Options) (func(http.Handler) http.Handler, error) {
	if len(opts.Supported) == 0 {
		return nil, ErrNoSupportedCultures
	}
	if opts.Default.IsInvariant() {
		opts.Default = opts.Supported[0]
	}
	if opts.Strategies == nil {
		opts.Strategies = DefaultStrategies("culture", "culture")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			culture := opts.Default
			for _, strategy := range opts.Strategies {
				res, ok := strategy(r, opts.Supported)
				if !ok {
					continue
				}
				culture = res.Culture
				if res.Path != "" && res.Path != r.URL.Path {
					r = rewritePath(r, res.Path)
				}
				break
			}

			next.ServeHTTP(w, r.WithContext(WithCulture(r.Context(), culture)))
		})
	}, nil
}

func rewritePath(r *http.Request, path string) *http.Request {
	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""
	r2.RequestURI = r2.URL.RequestURI()
	return r2
}
