package cli

import (
	"fmt"

	"github.com/aryankumar/oclogin/internal/output"
	"github.com/aryankumar/oclogin/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display detailed version information for the oclogin CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	return cmd
}

func runVersion(cmd *cobra.Command) error {
	info := version.Get()
	w := cmd.OutOrStdout()

	format, err := output.ParseFormat(viper.GetString("output"), output.FormatPlain)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format, output.WithNoColor(viper.GetBool("no-color")))

	switch format {
	case output.FormatTable:
		if err := formatter.Format(w, info.Map()); err != nil {
			return fmt.Errorf("failed to render version info: %w", err)
		}
	case output.FormatJSON, output.FormatYAML:
		if err := formatter.Format(w, info); err != nil {
			return fmt.Errorf("failed to marshal version info to %s: %w", format, err)
		}
	default:
		// Human-readable format
		fmt.Fprintln(w, info.String())
	}

	return nil
}
