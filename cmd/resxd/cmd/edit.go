package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resxkit/pkg/editor"
	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/redis"
	"github.com/dmitrymomot/resxkit/pkg/watch"
)

func newEditCmd(a *app) *cobra.Command {
	var culture string

	cmd := &cobra.Command{
		Use:   "edit <id> <name=value>...",
		Short: "Write override values for one culture",
		Long: `Merge name=value pairs into the override file of a resource for one culture.

The override file is created on first use. Values equal to the current
ones are left alone. When Redis is configured, running servers are told
about the change.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if culture == "" {
				return errors.New("--culture is required")
			}
			ctx, err := cultureContext(cmd.Context(), culture)
			if err != nil {
				return err
			}

			var opts []editor.Option
			if a.cfg.Redis.Enabled() {
				client, err := redis.Connect(ctx, a.cfg.Redis)
				if err != nil {
					return err
				}
				defer closeQuietly(client)
				opts = append(opts, editor.WithNotifier(watch.NewRedisWatcher(client,
					watch.WithRoot(a.resourcesRoot()), watch.WithLogger(a.log))))
			}

			ed, err := a.editor(opts...)
			if err != nil {
				return err
			}

			current, err := ed.Load(ctx, args[0])
			if err != nil {
				return err
			}
			values := make(map[string]string, len(current))
			for _, e := range current {
				values[e.Name] = e.NewValue
			}

			edits := make([]editor.Entry, 0, len(args)-1)
			for _, pair := range args[1:] {
				name, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid edit %q: expected name=value", pair)
				}
				edits = append(edits, editor.Entry{Name: name, OldValue: values[name], NewValue: value})
			}

			saved, err := ed.Save(ctx, args[0], edits)
			if err != nil {
				return err
			}
			_, override, err := ed.Paths(args[0], i18n.FromContext(ctx))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d value(s) merged into %s\n", len(saved), override)
			return err
		},
	}

	cmd.Flags().StringVarP(&culture, "culture", "c", "", "culture of the override file (required)")
	return cmd
}
