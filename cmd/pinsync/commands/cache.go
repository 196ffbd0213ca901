package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or rebuild the registry mapping cache",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Regenerate the registry mapping from the pre-commit catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RefreshMapping(cmd.Context())
		},
	})

	show := &cobra.Command{
		Use:   "show",
		Short: "List the registry mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, _ := cmd.Flags().GetBool("latest")
			return c.app.ShowMapping(cmd.Context(), latest)
		},
	}
	show.Flags().BoolP("latest", "l", false, "Also show the latest registry release of each project")
	cmd.AddCommand(show)

	return cmd
}
