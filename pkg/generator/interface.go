package generator

import (
	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/ir"
)

// Renderer turns composed artifacts into source files on disk
type Renderer interface {
	// Generate writes the output tree for the given artifacts and component
	// models, honoring the run's overwrite policy.
	Generate(cfg *config.Config, artifacts []ir.OperationArtifact, models []ir.ModelDef) error
	// GetType returns the type identifier for this renderer (e.g., "typescript")
	GetType() string
}

// Registry manages available renderers
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a new renderer registry
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds a renderer to the registry
func (r *Registry) Register(ren Renderer) {
	r.renderers[ren.GetType()] = ren
}

// Get retrieves a renderer by type
func (r *Registry) Get(typ string) (Renderer, bool) {
	ren, ok := r.renderers[typ]
	return ren, ok
}
