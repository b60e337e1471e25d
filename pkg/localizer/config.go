package localizer

import "time"

type Config struct {
	ResourcesPath     string        `env:"LOCALIZER_RESOURCES_PATH" envDefault:"resources"` // ResourcesPath is the directory holding override files.
	Extension         string        `env:"LOCALIZER_EXTENSION" envDefault:"resx"`           // Extension is the override file extension.
	FilesEnabled      bool          `env:"LOCALIZER_FILES_ENABLED" envDefault:"true"`       // FilesEnabled turns the override file tier on.
	NegativeTTL       time.Duration `env:"LOCALIZER_NEGATIVE_TTL" envDefault:"0s"`          // NegativeTTL expires name-level negative entries; zero never expires.
	ApplicationName   string        `env:"LOCALIZER_APPLICATION_NAME"`                      // ApplicationName is trimmed from Go type paths.
	ResolverCacheSize int           `env:"LOCALIZER_RESOLVER_CACHE_SIZE" envDefault:"256"`  // ResolverCacheSize bounds the factory's resolver cache.
}

// NewFactoryFromConfig creates a Factory from cfg. Options passed explicitly are
// applied after the config values.
func NewFactoryFromConfig(cfg Config, source FallbackSource, opts ...Option) (*Factory, error) {
	configOpts := make([]Option, 0, 6+len(opts))

	configOpts = append(configOpts, WithResourcesPath(cfg.ResourcesPath))
	if cfg.Extension != "" {
		configOpts = append(configOpts, WithExtension(cfg.Extension))
	}
	if !cfg.FilesEnabled {
		configOpts = append(configOpts, WithFilesDisabled())
	}
	if cfg.NegativeTTL > 0 {
		configOpts = append(configOpts, WithCacheOptions(WithNegativeTTL(cfg.NegativeTTL)))
	}
	if cfg.ApplicationName != "" {
		configOpts = append(configOpts, WithApplicationName(cfg.ApplicationName))
	}
	if cfg.ResolverCacheSize > 0 {
		configOpts = append(configOpts, WithResolverCacheSize(cfg.ResolverCacheSize))
	}

	configOpts = append(configOpts, opts...)
	return NewFactory(source, configOpts...)
}
