package cluster

import (
	"github.com/spf13/cobra"
)

// NewClusterCmd creates the cluster management command
func NewClusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Manage saved cluster profiles",
		Long: `Manage the cluster profiles saved in the oclogin config file.

Each profile has a name, an API server URL and the username used to log in.
This command provides subcommands for saving, listing, checking and logging in to them.`,
	}

	// Add subcommands
	cmd.AddCommand(NewConnectCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCurrentCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}
