package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newImgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "img <patterns...>",
		Short: "Render img tags for images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alt, _ := cmd.Flags().GetString("alt")
			attrs, _ := cmd.Flags().GetStringToString("attr")
			return c.app.Img(cmd.Context(), cmd.OutOrStdout(), args, alt, attrs)
		},
	}
	cmd.Flags().String("alt", "", "Alternative text of every tag")
	cmd.Flags().StringToString("attr", nil, "Attribute added to every tag (key=value, repeatable)")
	return cmd
}
