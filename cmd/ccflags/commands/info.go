package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ccflags/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the resolution mode and the configuration behind it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Info(cmd.Context(), app.InfoOptions{
				Options: globalOptions(cmd),
				Out:     cmd.OutOrStdout(),
			})
		},
	}
}
