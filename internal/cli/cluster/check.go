package cluster

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aryankumar/oclogin/internal/output"
	"github.com/aryankumar/oclogin/internal/probe"
	"github.com/aryankumar/oclogin/internal/registry"
	"github.com/aryankumar/oclogin/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newCheckCmd creates the cluster check command
func newCheckCmd() *cobra.Command {
	var (
		wide     bool
		timeout  time.Duration
		parallel int
		insecure bool
	)

	cmd := &cobra.Command{
		Use:   "check [NAME...]",
		Short: "Check that saved clusters' API servers are reachable",
		Long: `Check that the API server of each saved cluster answers, without logging in.

Each server's /version endpoint is requested anonymously, several clusters
at a time. With no NAME every saved cluster is checked. The command fails
if any checked cluster is unreachable.`,
		Example: `  # Check every saved cluster
  oclogin cluster check

  # Check two clusters whose certificates are self-signed
  oclogin cluster check dev qa --insecure-skip-tls-verify`,
		ValidArgsFunction: completeCheckNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := probe.Options{Timeout: timeout, Parallel: parallel, Insecure: insecure}
			return runCheck(cmd, args, opts, wide)
		},
	}

	cmd.Flags().BoolVarP(&wide, "wide", "w", false, "also show url, latency and error")
	cmd.Flags().DurationVar(&timeout, "timeout", probe.DefaultTimeout, "timeout for each cluster")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", probe.DefaultParallel, "number of clusters checked at once")
	cmd.Flags().BoolVar(&insecure, "insecure-skip-tls-verify", false, "do not verify API server certificates")

	return cmd
}

func runCheck(cmd *cobra.Command, names []string, opts probe.Options, wide bool) error {
	logger := slog.Default()

	format, err := output.ParseFormat(viper.GetString("output"), output.FormatTable)
	if err != nil {
		return err
	}

	clusters, err := newManager().LoadClusters()
	if err != nil {
		return util.WrapErrorf(err, "failed to load clusters")
	}

	selected, err := selectClusters(clusters, names)
	if err != nil {
		return err
	}

	logger.Debug("checking clusters",
		"count", len(selected),
		"parallel", opts.Parallel,
		"timeout", opts.Timeout)

	statuses, err := probe.NewProber(opts, logger).Check(cmd.Context(), selected)
	if err != nil {
		return fmt.Errorf("failed to check clusters: %w", err)
	}

	formatter := output.NewFormatter(format,
		output.WithWide(wide),
		output.WithNoColor(viper.GetBool("no-color")),
	)
	if err := formatter.FormatStatuses(cmd.OutOrStdout(), statuses); err != nil {
		return err
	}

	if failed := probe.Unreachable(statuses); len(failed) > 0 {
		return fmt.Errorf("%d of %d clusters unreachable", len(failed), len(statuses))
	}
	return nil
}

// selectClusters returns the named clusters in argument order, or all of them
func selectClusters(clusters registry.Registry, names []string) (registry.Registry, error) {
	if len(names) == 0 {
		return clusters, nil
	}

	selected := make(registry.Registry, 0, len(names))
	for _, name := range names {
		c, ok := clusters.Find(name)
		if !ok {
			return nil, &util.NotFoundError{ClusterName: name}
		}
		if _, dup := selected.Find(name); dup {
			continue
		}
		selected = append(selected, *c)
	}
	return selected, nil
}

// completeCheckNames completes any number of saved cluster names
func completeCheckNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeClusterNames(cmd, nil, toComplete)
}
