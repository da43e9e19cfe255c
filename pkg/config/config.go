package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReactQueryVersion selects the target react-query major version
type ReactQueryVersion string

const (
	V3 ReactQueryVersion = "v3"
	V4 ReactQueryVersion = "v4"
	V5 ReactQueryVersion = "v5"
)

// OverwritePolicy decides what happens when a target file already exists.
// It is explicit per-run state; nothing in the generator consults globals.
type OverwritePolicy string

const (
	// OverwriteAlways replaces existing files.
	OverwriteAlways OverwritePolicy = "always"
	// OverwriteNever keeps existing files untouched.
	OverwriteNever OverwritePolicy = "never"
	// OverwriteMissing writes only files that do not exist yet.
	OverwriteMissing OverwritePolicy = "missing"
)

// Hooks toggles which call-sites are generated per operation
type Hooks struct {
	Query    bool `yaml:"query"`
	Mutation bool `yaml:"mutation"`
	Suspense bool `yaml:"suspense"`
	Infinite bool `yaml:"infinite"`
}

// Generation is the per-run configuration consumed by the composer.
// Read-only to the core.
type Generation struct {
	Hooks     Hooks             `yaml:"hooks"`
	Version   ReactQueryVersion `yaml:"reactQuery"`
	Namespace string            `yaml:"namespace"`
}

// Config represents the complete configuration for a generation run
type Config struct {
	Spec   string `yaml:"spec"`
	OutDir string `yaml:"outDir"`
	// Operations selects which operations to generate, by operationId or by
	// "METHOD /path". Empty means every operation in the document.
	Operations []string        `yaml:"operations"`
	Generation Generation      `yaml:"generation"`
	Overwrite  OverwritePolicy `yaml:"overwrite"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Do not absolutize when spec is an HTTP(S) URL
	if u, err := url.Parse(cfg.Spec); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		// keep as-is
	} else if !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	if !filepath.IsAbs(cfg.OutDir) {
		abs, _ := filepath.Abs(cfg.OutDir)
		cfg.OutDir = abs
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields with their defaults
func (c *Config) ApplyDefaults() {
	if c.Generation.Version == "" {
		c.Generation.Version = V5
	}
	if c.Generation.Namespace == "" {
		c.Generation.Namespace = "api"
	}
	if c.Overwrite == "" {
		c.Overwrite = OverwriteAlways
	}
}

// Validate checks required fields and enum values
func (c *Config) Validate() error {
	if c.Spec == "" {
		return errors.New("config.spec is required")
	}
	if c.OutDir == "" {
		return errors.New("config.outDir is required")
	}
	switch c.Generation.Version {
	case V3, V4, V5:
	default:
		return fmt.Errorf("config.generation.reactQuery: unknown version %q (expected v3, v4, or v5)", c.Generation.Version)
	}
	switch c.Overwrite {
	case OverwriteAlways, OverwriteNever, OverwriteMissing:
	default:
		return fmt.Errorf("config.overwrite: unknown policy %q (expected always, never, or missing)", c.Overwrite)
	}
	return nil
}
