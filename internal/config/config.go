package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aryankumar/oclogin/internal/registry"
	"github.com/aryankumar/oclogin/internal/util"
	"github.com/spf13/viper"
)

const (
	defaultConfigDir  = ".oclogin"
	defaultConfigFile = "config.yaml"

	// DefaultLoginCommand is used when the config file does not name one
	DefaultLoginCommand = "oc"

	// ConfigPathEnv overrides the default config file location
	ConfigPathEnv = "OCLOGIN_CONFIG"
)

// DefaultPath returns the config file location used when --config is not set.
// OCLOGIN_CONFIG takes precedence over ~/.oclogin/config.yaml.
func DefaultPath() (string, error) {
	if env := os.Getenv(ConfigPathEnv); env != "" {
		return env, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigFile), nil
}

// Manager loads and persists the cluster registry file
type Manager struct {
	configPath string
	config     *FileConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager.
// An empty path resolves to DefaultPath on first use.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &FileConfig{},
	}
}

// Path returns the config file path, resolving the default if needed
func (m *Manager) Path() (string, error) {
	if m.configPath != "" {
		return m.configPath, nil
	}

	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	m.configPath = path
	return path, nil
}

// Load reads the config file. A missing file yields an empty registry.
func (m *Manager) Load() (*FileConfig, error) {
	path, err := m.Path()
	if err != nil {
		return nil, util.NewPersistenceError("load", "", err)
	}

	// A fresh instance so values Set by a previous Save do not shadow the file
	m.viper = viper.New()
	m.viper.SetConfigFile(path)
	m.viper.SetConfigType("yaml")

	m.config = &FileConfig{}

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, util.NewPersistenceError("load", path, err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, util.NewPersistenceError("load", path, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	m.applyDefaults()

	return m.config, nil
}

// Save writes the current configuration to file, replacing it atomically.
// The file is written next to the target and renamed into place, so readers
// never observe a partially written config.
func (m *Manager) Save() error {
	path, err := m.Path()
	if err != nil {
		return util.NewPersistenceError("write", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return util.NewPersistenceError("write", path, fmt.Errorf("failed to create config directory: %w", err))
	}

	// viper picks the encoder from the extension, so the temp name keeps .yaml
	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return util.NewPersistenceError("write", path, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return util.NewPersistenceError("write", path, err)
	}

	if err := m.viper.WriteConfigAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return util.NewPersistenceError("write", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return util.NewPersistenceError("write", path, err)
	}

	return nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *FileConfig {
	return m.config
}

// LoginCommand returns the configured login executable
func (m *Manager) LoginCommand() string {
	if m.config == nil || m.config.LoginCommand == "" {
		return DefaultLoginCommand
	}
	return m.config.LoginCommand
}

// SetClusters replaces the cluster list held in memory
func (m *Manager) SetClusters(clusters registry.Registry) {
	if m.config == nil {
		m.config = &FileConfig{}
	}

	m.config.Clusters = clusters.Clone()
	m.viper.Set("clusters", m.config.Clusters)
}

// LoadClusters loads the config file and returns its cluster registry
func (m *Manager) LoadClusters() (registry.Registry, error) {
	cfg, err := m.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Clusters.Clone(), nil
}

// SaveClusters persists the registry as a full replace of the file's cluster list
// and returns the registry as read back from disk.
func (m *Manager) SaveClusters(clusters registry.Registry) (registry.Registry, error) {
	// Keep other keys of an existing file
	if _, err := m.Load(); err != nil {
		return nil, err
	}

	m.SetClusters(clusters)
	if err := m.Save(); err != nil {
		return nil, err
	}

	return m.LoadClusters()
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Clusters == nil {
		m.config.Clusters = registry.Registry{}
	}
}
