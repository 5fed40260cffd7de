package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// KubeconfigLoader reads the kubeconfig that the login tool writes to
type KubeconfigLoader struct {
	paths        []string
	explicitPath string
	loadedConfig *api.Config
}

// NewKubeconfigLoader creates a new kubeconfig loader
// It checks sources in the following order:
// 1. Explicit path (--kubeconfig flag)
// 2. KUBECONFIG environment variable (supports multiple paths separated by ':' on Unix or ';' on Windows)
// 3. Default ~/.kube/config
func NewKubeconfigLoader(explicitPath string) *KubeconfigLoader {
	loader := &KubeconfigLoader{
		explicitPath: explicitPath,
		paths:        make([]string, 0),
	}

	if explicitPath != "" {
		if expandedPath, err := expandPath(explicitPath); err == nil {
			loader.paths = append(loader.paths, expandedPath)
		}
		return loader
	}

	if kubeconfigEnv := os.Getenv("KUBECONFIG"); kubeconfigEnv != "" {
		for _, path := range filepath.SplitList(kubeconfigEnv) {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			if expandedPath, err := expandPath(path); err == nil {
				loader.paths = append(loader.paths, expandedPath)
			}
		}
	}

	if len(loader.paths) == 0 {
		home, err := os.UserHomeDir()
		if err == nil {
			loader.paths = append(loader.paths, filepath.Join(home, ".kube", "config"))
		}
	}

	return loader
}

// Load returns the merged kubeconfig from all sources
func (l *KubeconfigLoader) Load() (*api.Config, error) {
	if l.loadedConfig != nil {
		return l.loadedConfig, nil
	}

	if len(l.paths) == 0 {
		return nil, fmt.Errorf("no kubeconfig paths available")
	}

	loadingRules := &clientcmd.ClientConfigLoadingRules{
		Precedence: l.paths,
	}

	config, err := loadingRules.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	if config == nil {
		return nil, fmt.Errorf("kubeconfig is empty")
	}

	l.loadedConfig = config
	return config, nil
}

// CurrentCluster returns the context, cluster and server of the current context
func (l *KubeconfigLoader) CurrentCluster() (*CurrentCluster, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if config.CurrentContext == "" {
		return nil, fmt.Errorf("no current context set in kubeconfig")
	}

	context, exists := config.Contexts[config.CurrentContext]
	if !exists || context == nil {
		return nil, fmt.Errorf("context %q not found in kubeconfig", config.CurrentContext)
	}

	cluster := config.Clusters[context.Cluster]
	if cluster == nil {
		return nil, fmt.Errorf("cluster %q not found for context %q", context.Cluster, config.CurrentContext)
	}

	return &CurrentCluster{
		Context: config.CurrentContext,
		Cluster: context.Cluster,
		Server:  cluster.Server,
		User:    context.AuthInfo,
	}, nil
}

// GetPaths returns the kubeconfig paths being used
func (l *KubeconfigLoader) GetPaths() []string {
	return l.paths
}

// expandPath expands ~ to home directory and evaluates environment variables
func expandPath(path string) (string, error) {
	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	return filepath.Clean(path), nil
}
