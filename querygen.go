// Package querygen generates typed TanStack Query hooks from OpenAPI
// specifications.
//
// Given a spec and a generation configuration it emits, per operation, a
// self-contained TypeScript file with resolved request/response types, a
// typed fetcher, a stable query-key factory, and the configured set of
// react-query call-sites (query, suspense, mutation, infinite), shaped for
// the targeted react-query major version.
//
// Quick start:
//
//	import "github.com/blimu-dev/query-gen"
//
//	err := querygen.Generate(querygen.Options{
//		Spec:   "./openapi.yaml",
//		OutDir: "./src/api",
//	})
//
// For finer control, see the config and generator packages.
package querygen

import (
	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/generator"
)

// Options configures a generation run through the convenience API
type Options struct {
	// Spec is a path to an OpenAPI specification file, or an HTTP(S) URL.
	Spec string
	// OutDir is the output directory for the generated files.
	OutDir string
	// Operations selects operations by operationId or "METHOD /path";
	// empty generates every operation in the document.
	Operations []string
	// Hooks toggles the generated call-sites. Zero value generates only
	// the typed fetcher and query-key factory.
	Hooks config.Hooks
	// Version is the target react-query major version; defaults to v5.
	Version config.ReactQueryVersion
	// Namespace is the leading element of every query key; defaults to "api".
	Namespace string
	// Overwrite decides what happens to existing files; defaults to always.
	Overwrite config.OverwritePolicy
}

// Generate runs a full generation pass with the given options
func Generate(opts Options) error {
	cfg := &config.Config{
		Spec:       opts.Spec,
		OutDir:     opts.OutDir,
		Operations: opts.Operations,
		Generation: config.Generation{
			Hooks:     opts.Hooks,
			Version:   opts.Version,
			Namespace: opts.Namespace,
		},
		Overwrite: opts.Overwrite,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return generator.Run(cfg)
}

// GenerateFromConfig runs a generation pass from a YAML configuration file
func GenerateFromConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return generator.Run(cfg)
}

// ValidateSpec validates an OpenAPI specification file or URL.
// Useful for checking a spec before attempting generation.
func ValidateSpec(spec string) error {
	return generator.ValidateSpec(spec)
}
