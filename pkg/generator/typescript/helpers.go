package typescript

import (
	"fmt"
	"strings"

	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/blimu-dev/query-gen/pkg/utils"
)

// typeText renders a descriptor to its TypeScript text
func typeText(d *ir.TypeDescriptor) string {
	return d.Render()
}

// paramField renders one parameter as an object type member
func paramField(p ir.Param) string {
	name := p.Name
	if !utils.IsBareIdentifier(name) {
		name = `"` + name + `"`
	}
	sep := ": "
	if !p.Required {
		sep = "?: "
	}
	return name + sep + p.Type.Render()
}

// variablesFields lists the members of the operation's Variables type
func variablesFields(art ir.OperationArtifact) []string {
	var out []string
	if len(art.PathParams) > 0 {
		out = append(out, fmt.Sprintf("pathParams: %sPathParams", art.DisplayName))
	}
	if len(art.QueryParams) > 0 {
		opt := "?"
		if art.Required.Query {
			opt = ""
		}
		out = append(out, fmt.Sprintf("queryParams%s: %sQueryParams", opt, art.DisplayName))
	}
	if art.BodyType != nil {
		opt := "?"
		if art.Required.Body {
			opt = ""
		}
		out = append(out, fmt.Sprintf("body%s: %sBody", opt, art.DisplayName))
	}
	return out
}

// hookImports assembles the named imports the operation file needs from the
// react-query module, in a fixed order
func hookImports(art ir.OperationArtifact) []string {
	plan := art.Hooks
	var out []string
	if plan.Query {
		out = append(out, "useQuery")
	}
	if plan.Suspense {
		out = append(out, "useSuspenseQuery")
	}
	if plan.Mutation {
		out = append(out, "useMutation")
	}
	if plan.Infinite {
		out = append(out, "useInfiniteQuery")
	}
	if plan.Query {
		out = append(out, "type UseQueryOptions")
	}
	if plan.Suspense {
		out = append(out, "type UseSuspenseQueryOptions")
	}
	if plan.Mutation {
		out = append(out, "type UseMutationOptions")
	}
	if plan.Infinite {
		out = append(out, "type UseInfiniteQueryOptions")
		if plan.Traits.TypedPageParam {
			out = append(out, "type InfiniteData")
		}
	}
	return out
}

// hasHooks reports whether any call-site is planned for the operation
func hasHooks(art ir.OperationArtifact) bool {
	plan := art.Hooks
	return plan.Query || plan.Suspense || plan.Mutation || plan.Infinite
}

// usesSchema reports whether any rendered type in the file references the
// Schema namespace, so the import is only emitted when needed
func usesSchema(art ir.OperationArtifact) bool {
	texts := []string{
		art.ResponseType.Render(),
		art.ErrorType.Render(),
	}
	if art.BodyType != nil {
		texts = append(texts, art.BodyType.Render())
	}
	for _, p := range art.PathParams {
		texts = append(texts, p.Type.Render())
	}
	for _, p := range art.QueryParams {
		texts = append(texts, p.Type.Render())
	}
	for _, t := range texts {
		if strings.Contains(t, "Schema.") {
			return true
		}
	}
	return false
}

// variablesParam renders the variables argument, defaulting to {} when every
// request part is optional
func variablesParam(art ir.OperationArtifact) string {
	if art.AllowEmptyVariables {
		return fmt.Sprintf("variables: %sVariables = {}", art.DisplayName)
	}
	return fmt.Sprintf("variables: %sVariables", art.DisplayName)
}

// fileBase is the generated file name (without extension) for an operation;
// it tokenizes the same identifier the naming layer derived
func fileBase(art ir.OperationArtifact) string {
	return utils.ToKebabCase(art.OperationName)
}

// infiniteQueryParamsMerge renders the query-parameter group with the page
// parameter merged in at call time
func infiniteQueryParamsMerge(art ir.OperationArtifact) string {
	if len(art.QueryParams) > 0 {
		return "{ ...variables.queryParams, page: pageParam }"
	}
	return "{ page: pageParam }"
}
