package cluster

import (
	"log/slog"

	"github.com/aryankumar/oclogin/internal/connect"
	"github.com/aryankumar/oclogin/internal/output"
	"github.com/aryankumar/oclogin/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newListCmd creates the cluster list command
func newListCmd() *cobra.Command {
	var wide bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved clusters",
		Long: `List the clusters saved in the oclogin config file, in the order they were added.

By default one name is printed per line. With --wide each line carries the
name, username and URL separated by tabs. Use -o table, json or yaml for
other formats.`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, wide)
		},
	}

	cmd.Flags().BoolVarP(&wide, "wide", "w", false, "show username and url for each cluster")

	return cmd
}

func runList(cmd *cobra.Command, wide bool) error {
	logger := slog.Default()

	format, err := output.ParseFormat(viper.GetString("output"), output.FormatPlain)
	if err != nil {
		return err
	}

	manager := newManager()
	clusters, err := connect.NewService(manager, nil).List()
	if err != nil {
		return util.WrapErrorf(err, "failed to load clusters")
	}

	path, _ := manager.Path()
	logger.Debug("loaded clusters", "count", len(clusters), "file", path)

	formatter := output.NewFormatter(format,
		output.WithWide(wide),
		output.WithNoColor(viper.GetBool("no-color")),
	)

	return formatter.FormatClusters(cmd.OutOrStdout(), clusters)
}
