package cluster

import (
	"fmt"
	"log/slog"

	"github.com/aryankumar/oclogin/internal/connect"
	"github.com/spf13/cobra"
)

// NewConnectCmd creates the connect command, registered both at the root and under cluster
func NewConnectCmd() *cobra.Command {
	var (
		clusterURL string
		username   string
	)

	cmd := &cobra.Command{
		Use:   "connect NAME",
		Short: "Log in to a saved cluster",
		Long: `Log in to a saved cluster with "oc login <url> -u <username>".

When --cluster-url and --username are given, the cluster is saved first
(or updated if a cluster with that name already exists) and then logged in to.
Without them, NAME must already be saved.

On Linux and macOS the login tool replaces the oclogin process, so its
prompts, output and exit code are what you see.`,
		Example: `  # Save a cluster and log in
  oclogin connect dev --cluster-url https://api.dev.example.com:6443 --username alice

  # Log in to a saved cluster
  oclogin connect dev`,
		Aliases:           []string{"login"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeClusterNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(cmd, args[0], clusterURL, username)
		},
	}

	cmd.Flags().StringVar(&clusterURL, "cluster-url", "", "API server URL to save for this cluster")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username to save for this cluster")

	return cmd
}

func runConnect(cmd *cobra.Command, name, clusterURL, username string) error {
	logger := slog.Default()

	if err := validateClusterArgs(name, clusterURL, username); err != nil {
		return err
	}

	manager := newManager()
	if _, err := manager.Load(); err != nil {
		return err
	}

	binary := loginCommand(manager)
	svc := connect.NewService(manager, newInvoker(binary))

	if clusterURL != "" {
		logger.Debug("saving cluster before login",
			"name", name,
			"url", clusterURL,
			"username", username,
			"login", binary)
		if err := svc.AddAndConnect(cmd.Context(), name, clusterURL, username); err != nil {
			return fmt.Errorf("failed to connect to cluster %s: %w", name, err)
		}
		return nil
	}

	logger.Debug("connecting to saved cluster", "name", name, "login", binary)
	if err := svc.ConnectByName(cmd.Context(), name); err != nil {
		return fmt.Errorf("failed to connect to cluster %s: %w", name, err)
	}
	return nil
}
