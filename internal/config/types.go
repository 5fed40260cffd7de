package config

import "github.com/aryankumar/oclogin/internal/registry"

// FileConfig represents the oclogin configuration file structure
type FileConfig struct {
	// LoginCommand is the executable used to log in (default "oc")
	LoginCommand string `yaml:"loginCommand,omitempty" json:"loginCommand,omitempty" mapstructure:"loginCommand"`

	// Clusters is the ordered list of saved cluster profiles
	Clusters registry.Registry `yaml:"clusters" json:"clusters" mapstructure:"clusters"`
}

// CurrentCluster describes the cluster the active kubeconfig context points at
type CurrentCluster struct {
	// Context is the current context name
	Context string `json:"context"`

	// Cluster is the kubeconfig cluster entry name
	Cluster string `json:"cluster"`

	// Server is the API server URL
	Server string `json:"server"`

	// User is the kubeconfig user entry, which oc writes as "<username>/<server>"
	User string `json:"user"`
}
