package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ccflags/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer JSON-lines flag requests on stdin",
		Long: `Read one JSON request per line from stdin, {"file": "...", "options": {...}},
and write one JSON reply per line to stdout until stdin is closed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Options: globalOptions(cmd),
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			})
		},
	}
}
