package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [groups...]",
		Short: "Build combined artifacts and upload them to the configured bucket",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			types, err := parseTypes(typ)
			if err != nil {
				return err
			}
			return c.app.Publish(cmd.Context(), args, types)
		},
	}
	cmd.Flags().StringP("type", "t", "all", "Asset type to publish: css, js or all")
	return cmd
}
