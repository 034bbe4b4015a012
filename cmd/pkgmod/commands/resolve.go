package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgmod/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Print the latest release of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")
			return c.app.Resolve(cmd.Context(), cmd.OutOrStdout(), args[0], app.ResolveOptions{
				Options: options(cmd),
				Refresh: refresh,
			})
		},
	}
	cmd.Flags().Bool("refresh", false, "Ignore cached release lists")
	return cmd
}
