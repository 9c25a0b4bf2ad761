package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ccflags/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [files...]",
		Short: "Print the compiler flags for files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			format, _ := cmd.Flags().GetString("format")

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				Options: globalOptions(cmd),
				Format:  format,
				Out:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringP("format", "f", "auto", "Output format: auto, text, or json")
	return cmd
}
