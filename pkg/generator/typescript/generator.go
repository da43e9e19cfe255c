package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/blimu-dev/query-gen/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

// Renderer writes the TypeScript output tree: a fetcher helper, the shared
// schema file, one file per operation, and an index re-exporting everything.
type Renderer struct {
	templates *template.Template
}

// NewRenderer creates a TypeScript renderer with its embedded templates
// parsed
func NewRenderer() *Renderer {
	return &Renderer{templates: parseTemplates()}
}

// GetType returns the renderer type identifier
func (r *Renderer) GetType() string {
	return "typescript"
}

// Generate renders all output files, honoring the run's overwrite policy
func (r *Renderer) Generate(cfg *config.Config, artifacts []ir.OperationArtifact, models []ir.ModelDef) error {
	queriesDir := filepath.Join(cfg.OutDir, "queries")
	if err := os.MkdirAll(queriesDir, 0o755); err != nil {
		return err
	}

	files := []struct {
		template string
		target   string
		data     any
	}{
		{"fetcher.ts.gotmpl", filepath.Join(cfg.OutDir, "fetcher.ts"), nil},
		{"schema.ts.gotmpl", filepath.Join(cfg.OutDir, "schema.ts"), map[string]any{"Models": models}},
		{"index.ts.gotmpl", filepath.Join(cfg.OutDir, "index.ts"), map[string]any{"Artifacts": artifacts}},
	}
	for _, f := range files {
		if err := r.renderFile(f.template, f.target, f.data, cfg.Overwrite); err != nil {
			return err
		}
	}
	for _, art := range artifacts {
		target := filepath.Join(queriesDir, fileBase(art)+".ts")
		if err := r.renderFile("operation.ts.gotmpl", target, map[string]any{"Art": art}, cfg.Overwrite); err != nil {
			return err
		}
	}
	return nil
}

// RenderOperation renders the source text of one operation file
func (r *Renderer) RenderOperation(art ir.OperationArtifact) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "operation.ts.gotmpl", map[string]any{"Art": art}); err != nil {
		return "", fmt.Errorf("failed to execute template operation.ts.gotmpl: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) renderFile(templateName, targetPath string, data any, policy config.OverwritePolicy) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return writeFile(targetPath, buf.Bytes(), policy)
}

// writeFile applies the per-run overwrite policy: always replaces, missing
// skips existing targets, never treats an existing target as an error
func writeFile(path string, content []byte, policy config.OverwritePolicy) error {
	if policy != config.OverwriteAlways {
		if _, err := os.Stat(path); err == nil {
			if policy == config.OverwriteNever {
				return fmt.Errorf("refusing to overwrite existing file %s", path)
			}
			return nil
		}
	}
	return os.WriteFile(path, content, 0o644)
}

func parseTemplates() *template.Template {
	funcMap := template.FuncMap{
		"tsType":          typeText,
		"paramField":      paramField,
		"variablesFields": variablesFields,
		"variablesParam":  variablesParam,
		"hookImports":     hookImports,
		"hasHooks":        hasHooks,
		"usesSchema":      usesSchema,
		"fileBase":        fileBase,
		"pageParamsMerge": infiniteQueryParamsMerge,
		"stripSchemaNs":   func(s string) string { return strings.ReplaceAll(s, "Schema.", "") },
		"pascal":          utils.ToPascalCase,
		"camel":           utils.ToCamelCase,
		"kebab":           utils.ToKebabCase,
	}
	for k, v := range sprig.TxtFuncMap() {
		if _, taken := funcMap[k]; !taken {
			funcMap[k] = v
		}
	}
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.gotmpl"))
}
