// Package config provides configuration management functionality for the
// jarslim application.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Namespace is the dotted package prefix of the target library.
	Namespace string `yaml:"namespace"`
	// LibraryHint is a lowercase substring used to recognize the target
	// library's own archive among the analysis paths.
	LibraryHint string `yaml:"library_hint"`
	// JdepsBin names the class-dependency analyzer binary.
	JdepsBin string `yaml:"jdeps_bin"`
	// UnzipBin names the archive extraction binary.
	UnzipBin string `yaml:"unzip_bin"`
	// ZipBin names the archive creation binary.
	ZipBin string `yaml:"zip_bin"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigFileParse, err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration, targeting the Guava
// utility library.
func (c *realManager) DefaultConfig() *Config {
	return &Config{
		Namespace:   "com.google.common",
		LibraryHint: "guava",
		JdepsBin:    "jdeps",
		UnzipBin:    "unzip",
		ZipBin:      "zip",
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return ErrNamespaceEmpty
	}
	if !namespacePattern.MatchString(c.Namespace) {
		return fmt.Errorf("%w: %q", ErrNamespaceInvalid, c.Namespace)
	}
	if c.LibraryHint == "" {
		return ErrLibraryHintEmpty
	}
	for _, bin := range []string{c.JdepsBin, c.UnzipBin, c.ZipBin} {
		if strings.TrimSpace(bin) == "" {
			return ErrToolNameEmpty
		}
	}
	return nil
}

// namespacePattern accepts dotted Java package prefixes.
var namespacePattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

// NamespaceRegex returns the regex restricting analysis to classes inside
// the target library's namespace, in the form the analyzer's filter option
// expects.
func (c *Config) NamespaceRegex() string {
	return regexp.QuoteMeta(c.Namespace) + `\..*`
}

// LoadConfigWithFallback loads configuration from file with fallback to default.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	// Try to load from file first
	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	return manager.DefaultConfig(), nil
}
