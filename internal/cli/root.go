package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aryankumar/oclogin/internal/cli/cluster"
	"github.com/aryankumar/oclogin/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oclogin",
		Short: "oclogin - Save OpenShift cluster profiles and log in to them by name",
		Long: `oclogin keeps a list of named cluster profiles (API URL and username)
in a local config file and logs in to them with "oc login".

Save and log in to a cluster in one step:
  oclogin connect dev --cluster-url https://api.dev.example.com:6443 --username alice

Afterwards the name is enough:
  oclogin connect dev`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.oclogin/config.yaml)")
	rootCmd.PersistentFlags().String("kubeconfig", "", "path to kubeconfig file (default is $HOME/.kube/config)")
	rootCmd.PersistentFlags().String("login-command", "", `login executable (default is "oc", or loginCommand from the config file)`)
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (plain, table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("kubeconfig", rootCmd.PersistentFlags().Lookup("kubeconfig"))
	viper.BindPFlag("login-command", rootCmd.PersistentFlags().Lookup("login-command"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(cluster.NewClusterCmd())
	rootCmd.AddCommand(cluster.NewConnectCmd())

	return rootCmd
}

// initConfig initializes configuration and logging
func initConfig(cmd *cobra.Command) error {
	// Read environment variables, e.g. OCLOGIN_LOGIN_COMMAND
	viper.SetEnvPrefix("OCLOGIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if viper.GetBool("no-color") {
		color.NoColor = true
	}

	// Setup structured logging
	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose := viper.GetBool("verbose")
	noColor := viper.GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}

	// Set default logger
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
		if viper.ConfigFileUsed() != "" {
			slog.Debug("using configuration", "file", viper.ConfigFileUsed())
		}
	}
}
