package generator

import (
	"strings"

	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/ir"
)

// versionTraits fully describes the generated-code shape for each supported
// react-query major version. All version variance lives in this table.
var versionTraits = map[config.ReactQueryVersion]ir.VersionTraits{
	config.V3: {
		Import:                "react-query",
		SuspenseHooks:         false,
		TypedPageParam:        false,
		NeedsGetNextPageParam: true,
	},
	config.V4: {
		Import:                "@tanstack/react-query",
		SuspenseHooks:         false,
		TypedPageParam:        false,
		NeedsGetNextPageParam: true,
	},
	config.V5: {
		Import:                "@tanstack/react-query",
		SuspenseHooks:         true,
		TypedPageParam:        true,
		NeedsGetNextPageParam: false,
	},
}

// Compose combines an operation's analysis into one renderer-ready artifact
// under the given generation configuration.
func Compose(method, path string, id ir.Identifier, a ir.Analysis, gen config.Generation) ir.OperationArtifact {
	required := ir.RequiredFlags{
		Path:  len(a.Params.Path) > 0,
		Query: a.Params.RequiredQuery,
		Body:  a.Body != nil && a.Body.Required,
	}

	art := ir.OperationArtifact{
		OperationName: id.Raw,
		DisplayName:   id.Pascal,
		Method:        strings.ToUpper(method),
		Path:          path,
		PathParams:    orderByPath(path, a.Params.Path),
		QueryParams:   a.Params.Query,
		ResponseType:  successType(a.Responses.Success),
		ErrorType:     errorType(a.Responses.Errors),
		Required:      required,
		// the variables argument may default to {} only when nothing is
		// required
		AllowEmptyVariables: !required.Path && !required.Query && !required.Body,
		CacheKey: ir.CacheKey{
			Namespace: gen.Namespace,
			Method:    strings.ToUpper(method),
			Path:      path,
		},
		Hooks: hookPlan(gen),
	}
	if a.Body != nil {
		art.BodyType = a.Body.Type
		art.BodyContentType = a.Body.ContentType
	}
	return art
}

// hookPlan gates each call-site on its configuration flag. Suspense hooks
// additionally require v5; on earlier versions the request is silently
// dropped rather than rejected.
func hookPlan(gen config.Generation) ir.HookPlan {
	traits := versionTraits[gen.Version]
	return ir.HookPlan{
		Query:    gen.Hooks.Query,
		Suspense: gen.Hooks.Suspense && traits.SuspenseHooks,
		Mutation: gen.Hooks.Mutation,
		Infinite: gen.Hooks.Infinite,
		Traits:   traits,
	}
}

// successType renders void for no-content and schemaless successes,
// regardless of any declared schema on a 204
func successType(s ir.SuccessResponse) *ir.TypeDescriptor {
	if s.NoContent || s.Type == nil {
		return ir.Scalar("void")
	}
	return s.Type
}

// errorType widens an empty error set to the catch-all opaque type
func errorType(errors []*ir.TypeDescriptor) *ir.TypeDescriptor {
	if len(errors) == 0 {
		return ir.Opaque()
	}
	return Union(errors)
}

// orderByPath returns path parameters in the order their placeholders appear
// in the path template
func orderByPath(path string, params []ir.Param) []ir.Param {
	index := map[string]int{}
	for i, p := range params {
		index[p.Name] = i
	}
	ordered := make([]ir.Param, 0, len(params))
	seen := map[string]bool{}
	for i := 0; i < len(path); i++ {
		if path[i] != '{' {
			continue
		}
		j := i + 1
		for j < len(path) && path[j] != '}' {
			j++
		}
		if j == len(path) {
			break
		}
		name := path[i+1 : j]
		if idx, ok := index[name]; ok && !seen[name] {
			ordered = append(ordered, params[idx])
			seen[name] = true
		}
		i = j
	}
	// keep declared parameters whose placeholder never appears
	for _, p := range params {
		if !seen[p.Name] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
