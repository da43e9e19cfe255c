package generator

import (
	"sort"
	"strings"

	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

// successPriority is the fixed order explicit success codes are considered
// in. 204 is handled before any of these and short-circuits to no-content.
var successPriority = []string{"200", "201", "202", "203"}

// Analyze partitions one operation into parameter groups, its single body
// schema, and its success/error response selection. It never fails for
// malformed fragments; schemas it cannot work out degrade through the
// resolver's opaque fallback.
func Analyze(op *openapi3.Operation, reg ir.Registry) ir.Analysis {
	return ir.Analysis{
		Params:    collectParams(op, reg),
		Body:      extractBody(op, reg),
		Responses: selectResponses(op, reg),
	}
}

// collectParams partitions declared parameters by location. Path parameters
// are forced required regardless of the declared flag: a path segment cannot
// be omitted structurally.
func collectParams(op *openapi3.Operation, reg ir.Registry) ir.ParameterGroup {
	var group ir.ParameterGroup
	for _, pr := range op.Parameters {
		if pr == nil || pr.Value == nil {
			continue
		}
		p := pr.Value
		param := ir.Param{
			Name:     p.Name,
			Required: p.Required,
			Type:     Resolve(SchemaNodeFromRef(p.Schema), reg),
		}
		switch p.In {
		case openapi3.ParameterInPath:
			param.Required = true
			group.Path = append(group.Path, param)
		case openapi3.ParameterInQuery:
			group.Query = append(group.Query, param)
			if param.Required {
				group.RequiredQuery = true
			}
		}
	}
	sort.Slice(group.Query, func(i, j int) bool { return group.Query[i].Name < group.Query[j].Name })
	return group
}

// extractBody picks the single body schema for the operation, preferring
// application/json and otherwise taking the first content type in sorted
// order. Operations with genuinely divergent bodies per content type are
// not modeled.
func extractBody(op *openapi3.Operation, reg ir.Registry) *ir.BodySchema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	rb := op.RequestBody.Value
	ct, media, ok := pickContent(rb.Content)
	if !ok {
		return nil
	}
	return &ir.BodySchema{
		ContentType: ct,
		Required:    rb.Required,
		Type:        Resolve(SchemaNodeFromRef(media.Schema), reg),
	}
}

func pickContent(content openapi3.Content) (string, *openapi3.MediaType, bool) {
	if len(content) == 0 {
		return "", nil, false
	}
	if media, ok := content["application/json"]; ok {
		return "application/json", media, true
	}
	cts := make([]string, 0, len(content))
	for ct := range content {
		cts = append(cts, ct)
	}
	sort.Strings(cts)
	return cts[0], content[cts[0]], true
}

// selectResponses applies the fixed resolution order for the success shape
// and collects the deduplicated error union. Ambiguity is settled by the
// priority order, never by raising.
func selectResponses(op *openapi3.Operation, reg ir.Registry) ir.ResponseSelection {
	var sel ir.ResponseSelection
	if op.Responses == nil {
		return sel
	}
	m := op.Responses.Map()

	// 204 wins over any other declared success, with no schema lookup
	if _, ok := m["204"]; ok {
		sel.Success = ir.SuccessResponse{Status: "204", NoContent: true}
	} else {
		sel.Success = pickSuccess(m, reg)
	}
	sel.Errors = collectErrors(m, reg)
	return sel
}

func pickSuccess(m map[string]*openapi3.ResponseRef, reg ir.Registry) ir.SuccessResponse {
	for _, code := range successPriority {
		if rr, ok := m[code]; ok {
			return ir.SuccessResponse{Status: code, Type: responseSchema(rr, reg)}
		}
	}
	if rr, ok := m["2XX"]; ok {
		return ir.SuccessResponse{Status: "2XX", Type: responseSchema(rr, reg)}
	}
	// "default" counts as success only when the map declares neither a
	// success nor an error entry of its own
	if rr, ok := m["default"]; ok && !hasExplicitSuccess(m) && !hasExplicitError(m) {
		return ir.SuccessResponse{Status: "default", Type: responseSchema(rr, reg)}
	}
	return ir.SuccessResponse{}
}

func collectErrors(m map[string]*openapi3.ResponseRef, reg ir.Registry) []*ir.TypeDescriptor {
	codes := make([]string, 0, len(m))
	for code := range m {
		if isErrorCode(code) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	var out []*ir.TypeDescriptor
	seen := map[string]bool{}
	add := func(d *ir.TypeDescriptor) {
		if d == nil {
			return
		}
		// Two status codes sharing one schema contribute a single member
		key := d.Render()
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, d)
	}
	for _, code := range codes {
		add(responseSchema(m[code], reg))
	}
	if len(out) == 0 {
		if rr, ok := m["default"]; ok {
			add(responseSchema(rr, reg))
		}
	}
	return out
}

func hasExplicitSuccess(m map[string]*openapi3.ResponseRef) bool {
	for code := range m {
		if code == "2XX" || (len(code) == 3 && code[0] == '2') {
			return true
		}
	}
	return false
}

func hasExplicitError(m map[string]*openapi3.ResponseRef) bool {
	for code := range m {
		if isErrorCode(code) {
			return true
		}
	}
	return false
}

func isErrorCode(code string) bool {
	if code == "4XX" || code == "5XX" {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[0] != '4' && code[0] != '5' {
		return false
	}
	return strings.IndexFunc(code, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

func responseSchema(rr *openapi3.ResponseRef, reg ir.Registry) *ir.TypeDescriptor {
	if rr == nil || rr.Value == nil {
		return nil
	}
	_, media, ok := pickContent(rr.Value.Content)
	if !ok || media.Schema == nil {
		return nil
	}
	return Resolve(SchemaNodeFromRef(media.Schema), reg)
}
