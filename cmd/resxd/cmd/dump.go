package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resxkit/pkg/localizer"
)

func newDumpCmd(a *app) *cobra.Command {
	var (
		culture string
		parents bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "dump <path>",
		Short: "Print every resolved name of a resource",
		Long: `Print every name of a resource with its resolved value, sorted by name.

Without --parents only names defined for the culture itself are listed,
from override files and the base catalog alike.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output format %q", output)
			}
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
			all, err := res.GetAll(ctx, parents)
			if errors.Is(err, localizer.ErrMissingManifest) {
				return fmt.Errorf("%w: %s", errNotFound, args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				values := make(map[string]string)
				for s := range all {
					values[s.Name] = s.Value
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(values)
			}
			for s := range all {
				if _, err := fmt.Fprintf(out, "%s=%s\n", s.Name, s.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&culture, "culture", "c", "", "culture to resolve in (default: invariant)")
	cmd.Flags().BoolVar(&parents, "parents", false, "include names defined only by parent cultures")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}
