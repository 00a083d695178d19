package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure [tasks...]",
		Short: "Resolve queued targets and emit the merged runner configuration",
		Long: `Resolve which targets of each multi-target task are queued, build their
configuration and merge it into the global config store. Without arguments
the default task selection applies.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Configure(args)
		},
	}
}
