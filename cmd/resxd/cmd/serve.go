package cmd

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resxkit/pkg/editor"
	"github.com/dmitrymomot/resxkit/pkg/httpserver"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/localizer"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/redis"
	"github.com/dmitrymomot/resxkit/pkg/requestid"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the string API and the override editor",
		Long: `Serve resolved strings and the override editor over HTTP.

  GET  /strings/{path}?name=...  resolve one name, or every name without ?name
  GET  <mount>/                  editable resources
  GET  <mount>/{id}              editable values for the request culture
  POST <mount>/{id}              save edited values
  GET  /health/live, /health/ready

The request culture comes from the URL prefix, cookie, query parameter or
Accept-Language header. Override files are watched for changes; with Redis
configured, saves on one instance invalidate every instance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTP.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $HTTP_ADDR)")
	return cmd
}

// resources is everything serve builds before the server starts.
type resources struct {
	closers []func() error
	checks  []httpserver.Check
	handler *chi.Mux
	factory *localizer.Factory
}

func (r *resources) close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

func (a *app) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	res, err := a.build(ctx)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(a.cfg.HTTP,
		httpserver.WithLogger(a.log),
		httpserver.WithCleanup(func(context.Context) error {
			cancel()
			return res.close()
		}),
	)
	return srv.Run(ctx, res.handler)
}

// build wires watchers, the localizer factory, the editor and the router.
func (a *app) build(ctx context.Context) (_ *resources, err error) {
	res := &resources{}
	defer func() {
		if err != nil {
			_ = res.close()
		}
	}()

	fsw, err := watch.NewFSWatcher(watch.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	res.closers = append(res.closers, fsw.Close)

	manual := watch.NewManual()
	watchers := watch.Multi{fsw, manual}
	notifiers := watch.Notifiers{manual}

	if a.cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		res.closers = append(res.closers, client.Close)

		rw := watch.NewRedisWatcher(client, watch.WithRoot(a.resourcesRoot()), watch.WithLogger(a.log))
		go func() {
			if err := rw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.ErrorContext(ctx, "redis change listener stopped", logger.Error(err))
			}
		}()
		watchers = append(watchers, rw)
		notifiers = append(notifiers, rw)
		res.checks = append(res.checks, redis.Healthcheck(client))
	}

	factory, cat, err := a.factory(watchers)
	if err != nil {
		return nil, err
	}
	res.factory = factory
	res.closers = append(res.closers, func() error {
		factory.Close()
		return nil
	})

	ed, err := a.editor(editor.WithNotifier(notifiers))
	if err != nil {
		return nil, err
	}

	i18nOpts, err := i18n.OptionsFromConfig(a.cfg.I18n)
	if err != nil {
		return nil, err
	}
	cultures, err := i18n.Middleware(i18nOpts)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	// before routing, so a culture URL prefix is stripped from the matched path
	r.Use(cultures)
	r.Get("/health/live", httpserver.HealthHandler(a.log))
	r.Get("/health/ready", httpserver.HealthHandler(a.log, res.checks...))
	r.Get("/strings/{path}", stringsHandler(factory, cat, a.log))
	r.Mount(a.cfg.Editor.MountPath, ed.Router())
	res.handler = r

	return res, nil
}
