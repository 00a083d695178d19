package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	depsCmd := &cobra.Command{
		Use:   "deps",
		Short: "Manage sibling repository dependencies",
	}

	depsCmd.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Clone missing sibling repositories and link them into the package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.SyncDeps(cmd.Context())
		},
	})

	return depsCmd
}
