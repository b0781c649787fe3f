package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/casset/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [groups...]",
		Short: "Render the markup of asset groups",
		Long: "Render link and script tags for the named groups and their dependencies.\n" +
			"Without group names every enabled group is rendered.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			noTags, _ := cmd.Flags().GetBool("no-tags")
			pageDir, _ := cmd.Flags().GetString("page-dir")
			attrs, _ := cmd.Flags().GetStringToString("attr")

			types, err := parseTypes(typ)
			if err != nil {
				return err
			}

			opts := app.RenderOptions{
				Types:   types,
				NoTags:  noTags,
				PageDir: pageDir,
				Attrs:   attrs,
			}
			// Only an explicit --inline overrides the per-group setting.
			if cmd.Flags().Changed("inline") {
				inline, _ := cmd.Flags().GetBool("inline")
				opts.Inline = &inline
			}

			return c.app.Render(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.Flags().StringP("type", "t", "all", "Asset type to render: css, js or all")
	cmd.Flags().BoolP("inline", "i", false, "Embed contents in style and script blocks")
	cmd.Flags().Bool("no-tags", false, "Print bare URLs or contents instead of tags")
	cmd.Flags().String("page-dir", "", "Directory of the page inline CSS is embedded in, relative to the root")
	cmd.Flags().StringToString("attr", nil, "Attribute added to every tag (key=value, repeatable)")
	return cmd
}
