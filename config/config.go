package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	History  HistoryConfig  `json:"history" yaml:"history"`
	Exec     ExecConfig     `json:"exec" yaml:"exec"`
	Discover DiscoverConfig `json:"discover" yaml:"discover"`
}

// HistoryConfig holds commit history fetch and checkout configuration.
type HistoryConfig struct {
	DefaultBranch string `json:"defaultBranch" yaml:"defaultBranch"` // Ref checked out for position 0. Default: "main"
	Limit         int    `json:"limit" yaml:"limit"`                 // Cap on log entries; 0 means unlimited
	DateFormat    string `json:"dateFormat" yaml:"dateFormat"`       // Go layout matching git's log date output
}

// ExecConfig holds external tool invocation configuration.
type ExecConfig struct {
	GitPath        string `json:"gitPath" yaml:"gitPath"`               // Default: "git"
	TimeoutSeconds int    `json:"timeoutSeconds" yaml:"timeoutSeconds"` // Per-invocation; 0 disables. Default: 30
}

// DiscoverConfig holds repository discovery options.
type DiscoverConfig struct {
	Include  []string `json:"include" yaml:"include"`
	Exclude  []string `json:"exclude" yaml:"exclude"`
	MaxDepth int      `json:"maxDepth" yaml:"maxDepth"`
}

// Timeout returns the exec timeout as a duration.
func (e ExecConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			DefaultBranch: "main",
			Limit:         0,
			DateFormat:    "Mon Jan 2 15:04:05 2006 -0700",
		},
		Exec: ExecConfig{
			GitPath:        "git",
			TimeoutSeconds: 30,
		},
		Discover: DiscoverConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// JSON and YAML are both accepted, chosen by extension. An empty path
// falls back to .gitscrub.json / .gitscrub.yaml in the working directory,
// then the home directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".gitscrub.json", ".gitscrub.yaml"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates,
				filepath.Join(home, ".gitscrub.json"),
				filepath.Join(home, ".gitscrub.yaml"),
			)
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file as JSON.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
