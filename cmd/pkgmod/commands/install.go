package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pkgmod/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <name[==version]>...",
		Short: "Install packages and print their environment",
		Long: "Install resolves the latest release of every package, or uses the pinned\n" +
			"version of name==version, installs it below <root>/<name>/<version> and\n" +
			"prints the environment to apply.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			modulefiles, _ := cmd.Flags().GetString("modulefiles")
			jobs, _ := cmd.Flags().GetInt("jobs")
			refresh, _ := cmd.Flags().GetBool("refresh")
			return c.app.Install(cmd.Context(), cmd.OutOrStdout(), args, app.InstallOptions{
				Options:     options(cmd),
				Format:      format,
				Modulefiles: modulefiles,
				Jobs:        jobs,
				Refresh:     refresh,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "sh", "Output format: sh, tcl or json")
	cmd.Flags().String("modulefiles", "", "Also write modulefiles below this directory")
	cmd.Flags().IntP("jobs", "j", 1, "Number of packages installed at once")
	cmd.Flags().Bool("refresh", false, "Ignore cached release lists")
	return cmd
}
