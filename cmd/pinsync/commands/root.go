// Package commands implements the CLI commands for pinsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pinsync/internal/app"
	"go.trai.ch/pinsync/internal/build"
)

// CLI represents the command line interface for pinsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, opts app.SyncOptions) error
	RefreshMapping(ctx context.Context) error
	ShowMapping(ctx context.Context, latest bool) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "pinsync",
		Short: "Keep pre-commit hook pins in sync with pip-compile",
		Long: "pinsync compares the rev of every pre-commit hook with the version pip-compile locked\n" +
			"for the same package and rewrites drifted pins. It exits 1 when drift was found.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runSync,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("force", "f", false, "Regenerate the registry mapping even when the cache is fresh")
	rootCmd.Flags().Bool("patch", true, "Write locked versions back into the pre-commit configuration")
	rootCmd.Flags().Bool("no-patch", false, "Only report drift, leave the pre-commit configuration untouched")
	rootCmd.MarkFlagsMutuallyExclusive("patch", "no-patch")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runSync(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	patch, _ := cmd.Flags().GetBool("patch")
	noPatch, _ := cmd.Flags().GetBool("no-patch")

	return c.app.Sync(cmd.Context(), app.SyncOptions{
		Force: force,
		Patch: patch && !noPatch,
	})
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
