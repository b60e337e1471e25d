package editor

type Config struct {
	ResourcesPath string `env:"EDITOR_RESOURCES_PATH" envDefault:"resources"` // ResourcesPath is the directory holding base and override files.
	Extension     string `env:"EDITOR_EXTENSION" envDefault:"resx"`           // Extension is the resource file extension.
	MountPath     string `env:"EDITOR_MOUNT_PATH" envDefault:"/resources"`    // MountPath is where resxd serve mounts the router.
}

// NewFromConfig creates an Editor from cfg. Explicit options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Editor, error) {
	configOpts := make([]Option, 0, 1+len(opts))
	if cfg.Extension != "" {
		configOpts = append(configOpts, WithExtension(cfg.Extension))
	}
	return New(cfg.ResourcesPath, append(configOpts, opts...)...)
}
