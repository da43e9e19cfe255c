package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/generator"
	"github.com/blimu-dev/query-gen/pkg/openapi"
)

// FallbackParams configure a run when no config file is provided
type FallbackParams struct {
	Spec       string
	OutDir     string
	Namespace  string
	Version    string
	Operations []string
	Overwrite  string

	QueryHook    bool
	MutationHook bool
	SuspenseHook bool
	InfiniteHook bool
}

// RunGenerateParams are the inputs of the generate command
type RunGenerateParams struct {
	ConfigPath string
	Fallback   FallbackParams
}

// RunGenerate loads (or assembles) the run configuration and executes the
// generation pipeline
func RunGenerate(p RunGenerateParams) error {
	cfg, err := resolveConfig(p)
	if err != nil {
		return err
	}
	return generator.Run(cfg)
}

func resolveConfig(p RunGenerateParams) (*config.Config, error) {
	if p.ConfigPath != "" {
		return config.Load(p.ConfigPath)
	}
	f := p.Fallback
	if f.Spec == "" || f.OutDir == "" {
		return nil, errors.New("either --config or both --input and --out must be provided")
	}
	cfg := &config.Config{
		Spec:       f.Spec,
		OutDir:     absPath(f.OutDir),
		Operations: f.Operations,
		Generation: config.Generation{
			Hooks: config.Hooks{
				Query:    f.QueryHook,
				Mutation: f.MutationHook,
				Suspense: f.SuspenseHook,
				Infinite: f.InfiniteHook,
			},
			Version:   config.ReactQueryVersion(f.Version),
			Namespace: f.Namespace,
		},
		Overwrite: config.OverwritePolicy(f.Overwrite),
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunList prints every operation in the document with its derived identifier
func RunList(input string, w io.Writer) error {
	doc, err := openapi.LoadDocument(input)
	if err != nil {
		return err
	}
	for _, e := range generator.CollectOperations(doc) {
		fmt.Fprintf(w, "%-7s %-40s %s\n", e.Method, e.Path, e.ID.Raw)
	}
	return nil
}

// RunValidate validates an OpenAPI document
func RunValidate(input string) error {
	return openapi.ValidateDocument(input)
}

func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// Stdout is the default writer for list output
var Stdout io.Writer = os.Stdout
