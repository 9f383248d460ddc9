/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/

// Package cliconfig holds the tunable knobs for the ordindex command-line
// tools: tree branching factor, dataset size, and the PRNG seed used to
// build reproducible benchmark/demo data.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted configuration for the ordindex CLI.
type Config struct {
	Tree    Tree    `yaml:"tree"`
	Bench   Bench   `yaml:"bench"`
	Logging Logging `yaml:"logging"`
}

// Tree controls the branching factor used by trees the CLI constructs.
type Tree struct {
	InternalCapacity int `yaml:"internal_capacity"`
	LeafCapacity     int `yaml:"leaf_capacity"`
}

// Bench controls the synthetic workload the bench subcommand runs.
type Bench struct {
	Entries int   `yaml:"entries"`
	KeySpan int   `yaml:"key_span"`
	Seed    int64 `yaml:"seed"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tree: Tree{
			InternalCapacity: 16,
			LeafCapacity:     15,
		},
		Bench: Bench{
			Entries: 500,
			KeySpan: 3000,
			Seed:    42,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform: ~/.config/ordindex/config.yaml.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./ordindex.yaml"
	}
	configDir := filepath.Join(homeDir, ".config", "ordindex")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists at the given path.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
