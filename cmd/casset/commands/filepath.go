package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/casset/internal/core/domain"
)

func (c *CLI) newFilepathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filepath <pattern>",
		Short: "Print the paths a file pattern resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			addURL, _ := cmd.Flags().GetBool("url")

			t, err := domain.ParseAssetType(typ)
			if err != nil {
				return err
			}
			return c.app.Filepath(cmd.Context(), cmd.OutOrStdout(), args[0], t, addURL)
		},
	}
	cmd.Flags().StringP("type", "t", "js", "Asset type of the pattern: css, js or img")
	cmd.Flags().BoolP("url", "u", false, "Prefix local paths with the asset URL")
	return cmd
}
