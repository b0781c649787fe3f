package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/casset/internal/app"
	"go.trai.ch/zerr"
)

var errInvalidBefore = zerr.New("invalid --before, expected a duration or an RFC3339 time")

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stale artifacts from the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			before, _ := cmd.Flags().GetString("before")
			typ, _ := cmd.Flags().GetString("type")

			cutoff, err := parseBefore(before, time.Now())
			if err != nil {
				return err
			}
			types, err := parseTypes(typ)
			if err != nil {
				return err
			}

			opts := app.CleanOptions{Before: cutoff}
			if len(types) == 1 {
				opts.Type = types[0]
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringP("before", "b", "", "Only remove artifacts older than a duration (24h) or an RFC3339 time")
	cmd.Flags().StringP("type", "t", "all", "Asset type to remove: css, js or all")

	return cmd
}

// parseBefore reads a cutoff as a duration back from now or an absolute time.
// An empty value is the zero time, which the sweep treats as now.
func parseBefore(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, zerr.With(errInvalidBefore, "before", s)
	}
	return t, nil
}
