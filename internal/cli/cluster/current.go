package cluster

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aryankumar/oclogin/internal/config"
	"github.com/aryankumar/oclogin/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newCurrentCmd creates the cluster current command
func newCurrentCmd() *cobra.Command {
	var wide bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show which saved cluster the current kubeconfig context points at",
		Long: `Show the saved cluster whose URL matches the server of the current
kubeconfig context, i.e. the cluster "oc login" last logged in to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(cmd, wide)
		},
	}

	cmd.Flags().BoolVarP(&wide, "wide", "w", false, "also show username, url and kubeconfig context")

	return cmd
}

func runCurrent(cmd *cobra.Command, wide bool) error {
	logger := slog.Default()

	loader := config.NewKubeconfigLoader(viper.GetString("kubeconfig"))
	logger.Debug("using kubeconfig paths", "paths", strings.Join(loader.GetPaths(), ", "))

	current, err := loader.CurrentCluster()
	if err != nil {
		return err
	}

	clusters, err := newManager().LoadClusters()
	if err != nil {
		return util.WrapErrorf(err, "failed to load clusters")
	}

	match, ok := clusters.FindByURL(current.Server)
	if !ok {
		return fmt.Errorf("current context %q (server %s) does not match a saved cluster: %w",
			current.Context, current.Server, util.ErrClusterNotFound)
	}

	if wide {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", match.Line(true), current.Context)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), match.Name)
	return nil
}
