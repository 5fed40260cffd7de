package cluster

import (
	"strings"

	"github.com/aryankumar/oclogin/internal/config"
	"github.com/aryankumar/oclogin/internal/login"
	"github.com/aryankumar/oclogin/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newInvoker builds the login invoker; tests replace it to avoid running oc
var newInvoker = func(binary string) login.Invoker {
	return login.NewInvoker(binary)
}

// newManager returns a config manager for --config, OCLOGIN_CONFIG or the default path
func newManager() *config.Manager {
	return config.NewManager(viper.GetString("config"))
}

// loginCommand resolves the login executable: flag or env first, then the config file.
// The manager must already be loaded.
func loginCommand(manager *config.Manager) string {
	if cmd := viper.GetString("login-command"); cmd != "" {
		return cmd
	}
	return manager.LoginCommand()
}

// validateClusterArgs checks the name and that url and username come as a pair
func validateClusterArgs(name, url, username string) error {
	if strings.TrimSpace(name) == "" {
		return util.NewValidationError("name", nil, "cluster name must not be empty")
	}

	if (url == "") != (username == "") {
		if url == "" {
			return util.NewValidationError("cluster-url", url, "must be set together with --username")
		}
		return util.NewValidationError("username", username, "must be set together with --cluster-url")
	}

	return nil
}

// completeClusterNames completes the first argument from the saved registry
func completeClusterNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	clusters, err := newManager().LoadClusters()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(clusters))
	for _, name := range clusters.Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
