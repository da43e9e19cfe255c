package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

var pathMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD", "TRACE"}

// OperationEntry is one (method, path) pair declared in the document
type OperationEntry struct {
	Method string
	Path   string
	ID     ir.Identifier
	Op     *openapi3.Operation
}

// CollectOperations lists every operation in the document in stable
// path-then-method order
func CollectOperations(doc *openapi3.T) []OperationEntry {
	var out []OperationEntry
	if doc.Paths == nil {
		return out
	}
	for path, item := range doc.Paths.Map() {
		for _, method := range pathMethods {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			out = append(out, OperationEntry{
				Method: method,
				Path:   path,
				ID:     DeriveIdentifier(method, path, op.OperationID),
				Op:     op,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path == out[j].Path {
			return out[i].Method < out[j].Method
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// SelectOperations filters the document's operations by selector. A selector
// matches either a declared operationId or a "METHOD /path" pair. A selector
// that matches nothing is a hard error: silently skipping a user-selected
// endpoint would be a correctness regression, not a degradation.
func SelectOperations(doc *openapi3.T, selectors []string) ([]OperationEntry, error) {
	all := CollectOperations(doc)
	if len(selectors) == 0 {
		return all, nil
	}
	var out []OperationEntry
	for _, sel := range selectors {
		entry, ok := findOperation(all, sel)
		if !ok {
			return nil, fmt.Errorf("operation %q not found in document", sel)
		}
		out = append(out, entry)
	}
	return out, nil
}

func findOperation(all []OperationEntry, selector string) (OperationEntry, bool) {
	for _, e := range all {
		if e.Op.OperationID != "" && e.Op.OperationID == selector {
			return e, true
		}
		if strings.EqualFold(selector, e.Method+" "+e.Path) {
			return e, true
		}
	}
	return OperationEntry{}, false
}

// BuildArtifacts analyzes and composes every selected operation. Each
// operation is handled independently over immutable inputs, so callers may
// fan this out across operations without coordination.
func BuildArtifacts(doc *openapi3.T, selectors []string, gen config.Generation) ([]ir.OperationArtifact, error) {
	entries, err := SelectOperations(doc, selectors)
	if err != nil {
		return nil, err
	}
	reg := BuildRegistry(doc)
	out := make([]ir.OperationArtifact, 0, len(entries))
	for _, e := range entries {
		analysis := Analyze(e.Op, reg)
		out = append(out, Compose(e.Method, e.Path, e.ID, analysis, gen))
	}
	return out, nil
}

// BuildModels shallow-resolves every component schema for the shared schema
// file, in sorted name order
func BuildModels(doc *openapi3.T) []ir.ModelDef {
	reg := BuildRegistry(doc)
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]ir.ModelDef, 0, len(names))
	for _, name := range names {
		out = append(out, ir.ModelDef{Name: name, Type: ResolveShallow(reg[name], reg)})
	}
	return out
}
