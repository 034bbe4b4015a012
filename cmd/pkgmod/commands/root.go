// Package commands implements the CLI commands for pkgmod.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgmod/internal/app"
	"go.trai.ch/pkgmod/internal/build"
)

// CLI represents the command line interface for pkgmod.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(verbose, jsonLogs bool)
	Resolve(ctx context.Context, out io.Writer, name string, opts app.ResolveOptions) error
	Install(ctx context.Context, out io.Writer, specs []string, opts app.InstallOptions) error
	Describe(ctx context.Context, out io.Writer, name, version string, opts app.DescribeOptions) error
	List(ctx context.Context, out io.Writer, opts app.Options) error
	Exec(ctx context.Context, stdout, stderr io.Writer, name, version string, argv []string, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgmod",
		Short:         "Install Python packages into versioned module trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Registered before the version flag so -v stays with --verbose.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: pkgmod.yaml searched upwards)")
	rootCmd.PersistentFlags().String("root", "", "Install root, overriding the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Log as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.ConfigureLogging(verbose, jsonLogs)
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newDescribeCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	return app.Options{ConfigPath: configPath, Root: root}
}
