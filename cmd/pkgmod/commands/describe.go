package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgmod/internal/app"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <name> <version>",
		Short: "Print the environment of an installed package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Describe(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], app.DescribeOptions{
				Options: options(cmd),
				Format:  format,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "sh", "Output format: sh, tcl or json")
	return cmd
}
