package generator

import (
	"fmt"

	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/generator/typescript"
	"github.com/blimu-dev/query-gen/pkg/openapi"
)

// Run executes a full generation run: load and validate the document, build
// one artifact per selected operation, and hand everything to the renderer.
func Run(cfg *config.Config) error {
	loader := openapi.NewLoader()
	doc, err := openapi.LoadDocumentWithLoader(loader, cfg.Spec)
	if err != nil {
		return fmt.Errorf("load spec %s: %w", cfg.Spec, err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return fmt.Errorf("validate spec %s: %w", cfg.Spec, err)
	}

	artifacts, err := BuildArtifacts(doc, cfg.Operations, cfg.Generation)
	if err != nil {
		return err
	}
	models := BuildModels(doc)

	registry := NewRegistry()
	registry.Register(typescript.NewRenderer())
	renderer, ok := registry.Get("typescript")
	if !ok {
		return fmt.Errorf("no renderer registered for type %q", "typescript")
	}
	return renderer.Generate(cfg, artifacts, models)
}

// ValidateSpec validates an OpenAPI specification file or URL
func ValidateSpec(spec string) error {
	return openapi.ValidateDocument(spec)
}
