package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resxkit/pkg/catalog"
	"github.com/dmitrymomot/resxkit/pkg/config"
	"github.com/dmitrymomot/resxkit/pkg/editor"
	"github.com/dmitrymomot/resxkit/pkg/httpserver"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/localizer"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/redis"
	"github.com/dmitrymomot/resxkit/pkg/requestid"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

// Config is the complete resxd configuration, read from the environment.
type Config struct {
	Log       logger.Config
	HTTP      httpserver.Config
	Redis     redis.Config
	I18n      i18n.Config
	Localizer localizer.Config
	Editor    editor.Config

	// CatalogPath holds the base resources used as the compiled fallback.
	// Empty means the localizer resources path.
	CatalogPath string `env:"RESXD_CATALOG_PATH"`
}

type app struct {
	cfg Config
	log *slog.Logger
}

var errNotFound = errors.New("resource not found")

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the resxd command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var (
		envFiles    []string
		resources   string
		catalogPath string
		logLevel    string
	)

	root := &cobra.Command{
		Use:   "resxd",
		Short: "Resolve, inspect and edit localized resources",
		Long: `resxd serves and edits localized string resources.

Values come from editable override files below the resources directory
(<path>.<culture>.resx) and fall back to the base resource catalog.

Commands:
  serve  - HTTP API with the override editor
  get    - resolve one name
  dump   - list every resolved name of a resource
  edit   - write override values
  list   - list editable resources`,
		SilenceUsage: true,
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var opts []config.Option
		if len(envFiles) > 0 {
			opts = append(opts, config.WithEnvFiles(envFiles...))
		}
		if err := config.Load(&a.cfg, opts...); err != nil {
			return err
		}

		flags := root.PersistentFlags()
		if flags.Changed("resources") {
			a.cfg.Localizer.ResourcesPath = resources
			a.cfg.Editor.ResourcesPath = resources
		}
		if flags.Changed("catalog") {
			a.cfg.CatalogPath = catalogPath
		}
		if flags.Changed("log-level") {
			a.cfg.Log.Level = logLevel
		}

		a.log = logger.NewFromConfig(a.cfg.Log,
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
		)
		return nil
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&envFiles, "env-file", nil, "env files to load instead of ./.env")
	flags.StringVarP(&resources, "resources", "r", "", "resources directory (default $LOCALIZER_RESOURCES_PATH)")
	flags.StringVar(&catalogPath, "catalog", "", "base resource catalog directory (default: the resources directory)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL)")

	root.AddCommand(
		newServeCmd(a),
		newGetCmd(a),
		newDumpCmd(a),
		newEditCmd(a),
		newListCmd(a),
		newVersionCmd(),
	)
	return root
}

// catalog indexes the base resources once per command.
func (a *app) catalog() (*catalog.Catalog, error) {
	dir := a.cfg.CatalogPath
	if dir == "" {
		dir = a.cfg.Localizer.ResourcesPath
	}
	return catalog.New(os.DirFS(dir), catalog.WithLogger(a.log))
}

// factory builds a localizer factory over the base catalog.
func (a *app) factory(w watch.Watcher) (*localizer.Factory, *catalog.Catalog, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, nil, err
	}
	opts := []localizer.Option{localizer.WithLogger(a.log)}
	if w != nil {
		opts = append(opts, localizer.WithWatcher(w))
	}
	f, err := localizer.NewFactoryFromConfig(a.cfg.Localizer, cat, opts...)
	if err != nil {
		return nil, nil, err
	}
	return f, cat, nil
}

func (a *app) editor(opts ...editor.Option) (*editor.Editor, error) {
	return editor.NewFromConfig(a.cfg.Editor, append([]editor.Option{editor.WithLogger(a.log)}, opts...)...)
}

// resourcesRoot is the absolute resources directory used to key change notifications.
func (a *app) resourcesRoot() string {
	abs, err := filepath.Abs(a.cfg.Localizer.ResourcesPath)
	if err != nil {
		return a.cfg.Localizer.ResourcesPath
	}
	return abs
}

// cultureContext parses name and stores it as the ambient culture.
func cultureContext(ctx context.Context, name string) (context.Context, error) {
	c, err := i18n.Parse(name)
	if err != nil {
		return nil, err
	}
	return i18n.WithCulture(ctx, c), nil
}

func closeQuietly(c io.Closer) { _ = c.Close() }
