package cluster

import (
	"fmt"
	"log/slog"

	"github.com/aryankumar/oclogin/internal/connect"
	"github.com/aryankumar/oclogin/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newAddCmd creates the cluster add command
func newAddCmd() *cobra.Command {
	var (
		clusterURL string
		username   string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Save a cluster profile without logging in",
		Long: `Save a cluster profile to the oclogin config file.

If a cluster with the same name exists, its URL and username are replaced
and it keeps its position in the list. Use "oclogin connect" to log in.`,
		Aliases: []string{"set"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], clusterURL, username)
		},
	}

	cmd.Flags().StringVar(&clusterURL, "cluster-url", "", "API server URL of the cluster")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username used to log in")
	_ = cmd.MarkFlagRequired("cluster-url")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runAdd(cmd *cobra.Command, name, clusterURL, username string) error {
	if err := validateClusterArgs(name, clusterURL, username); err != nil {
		return err
	}

	manager := newManager()
	svc := connect.NewService(manager, nil)

	saved, err := svc.Add(name, clusterURL, username)
	if err != nil {
		return fmt.Errorf("failed to save cluster %s: %w", name, err)
	}

	path, _ := manager.Path()
	slog.Default().Debug("saved cluster", "name", name, "clusters", len(saved), "file", path)

	colors := output.NewColorScheme(cmd.OutOrStdout(), viper.GetBool("no-color"))
	fmt.Fprintln(cmd.OutOrStdout(), colors.Success("Cluster %s saved", name))

	return nil
}
