package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resxkit/pkg/localizer"
)

func newGetCmd(a *app) *cobra.Command {
	var (
		culture string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "get <path> <name> [format-args...]",
		Short: "Resolve one name of a resource",
		Long: `Resolve one name of a resource in the given culture and print its value.

Extra arguments fill the {0}, {1}, ... placeholders of the value.
Missing names print the name itself unless --strict is set.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cultureContext(cmd.Context(), culture)
			if err != nil {
				return err
			}

			f, _, err := a.factory(nil)
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := f.Create(args[0])
			if err != nil {
				return err
			}

			var s localizer.LocalizedString
			if formatArgs := args[2:]; len(formatArgs) > 0 {
				values := make([]any, len(formatArgs))
				for i, v := range formatArgs {
					values[i] = v
				}
				s = res.Format(ctx, args[1], values...)
			} else {
				s = res.Get(ctx, args[1])
			}

			if strict && !s.Found {
				return fmt.Errorf("%w: %q in %s", errNotFound, args[1], args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Value)
			return err
		},
	}

	cmd.Flags().StringVarP(&culture, "culture", "c", "", "culture to resolve in (default: invariant)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the name is not found")
	return cmd
}
