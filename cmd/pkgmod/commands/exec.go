package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <name> <version> -- <command> [args...]",
		Short: "Run a command with an installed package on the search paths",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := args[2:]
			if argv[0] == "--" {
				argv = argv[1:]
			}
			return c.app.Exec(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1], argv, options(cmd))
		},
	}
	// Flags after the package belong to the command being run, and the
	// separating "--" is left in args.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
