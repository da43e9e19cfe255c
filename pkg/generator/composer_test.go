package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/query-gen/pkg/config"
	"github.com/blimu-dev/query-gen/pkg/ir"
)

func genConfig(version config.ReactQueryVersion, hooks config.Hooks) config.Generation {
	return config.Generation{Hooks: hooks, Version: version, Namespace: "api"}
}

func TestComposeSuspenseGatedOnVersion(t *testing.T) {
	id := DeriveIdentifier("GET", "/orders", "")
	hooks := config.Hooks{Query: true, Suspense: true}

	v4 := Compose("GET", "/orders", id, ir.Analysis{}, genConfig(config.V4, hooks))
	assert.False(t, v4.Hooks.Suspense)
	assert.Equal(t, "@tanstack/react-query", v4.Hooks.Traits.Import)
	assert.True(t, v4.Hooks.Traits.NeedsGetNextPageParam)

	v5 := Compose("GET", "/orders", id, ir.Analysis{}, genConfig(config.V5, hooks))
	assert.True(t, v5.Hooks.Suspense)
	assert.True(t, v5.Hooks.Traits.TypedPageParam)

	v3 := Compose("GET", "/orders", id, ir.Analysis{}, genConfig(config.V3, hooks))
	assert.False(t, v3.Hooks.Suspense)
	assert.Equal(t, "react-query", v3.Hooks.Traits.Import)
}

func TestComposeCacheKeyIndependentOfHooks(t *testing.T) {
	id := DeriveIdentifier("GET", "/users/{userId}/orders", "")
	a := ir.Analysis{Params: ir.ParameterGroup{Path: []ir.Param{{Name: "userId", Required: true, Type: ir.Scalar("string")}}}}

	everything := Compose("GET", "/users/{userId}/orders", id, a,
		genConfig(config.V5, config.Hooks{Query: true, Mutation: true, Suspense: true, Infinite: true}))
	nothing := Compose("GET", "/users/{userId}/orders", id, a,
		genConfig(config.V5, config.Hooks{}))

	assert.Equal(t, everything.CacheKey, nothing.CacheKey)
	assert.Equal(t, ir.CacheKey{Namespace: "api", Method: "GET", Path: "/users/{userId}/orders"}, everything.CacheKey)
}

func TestComposeRequiredFlags(t *testing.T) {
	id := DeriveIdentifier("POST", "/orders", "createOrder")
	a := ir.Analysis{Body: &ir.BodySchema{ContentType: "application/json", Required: true, Type: ir.Scalar("string")}}
	art := Compose("POST", "/orders", id, a, genConfig(config.V5, config.Hooks{Query: true}))

	assert.True(t, art.Required.Body)
	assert.False(t, art.Required.Path)
	assert.False(t, art.Required.Query)
	assert.False(t, art.AllowEmptyVariables)
}

func TestComposeAllowEmptyVariables(t *testing.T) {
	id := DeriveIdentifier("GET", "/orders", "")
	a := ir.Analysis{Params: ir.ParameterGroup{Query: []ir.Param{{Name: "page", Type: ir.Scalar("number")}}}}
	art := Compose("GET", "/orders", id, a, genConfig(config.V5, config.Hooks{Query: true}))

	// an optional query parameter alone does not force a variables argument
	assert.True(t, art.AllowEmptyVariables)
}

func TestComposePathParamsFollowTemplateOrder(t *testing.T) {
	id := DeriveIdentifier("GET", "/a/{first}/b/{second}", "")
	a := ir.Analysis{Params: ir.ParameterGroup{Path: []ir.Param{
		{Name: "second", Required: true, Type: ir.Scalar("string")},
		{Name: "first", Required: true, Type: ir.Scalar("string")},
	}}}
	art := Compose("GET", "/a/{first}/b/{second}", id, a, genConfig(config.V5, config.Hooks{Query: true}))

	require.Len(t, art.PathParams, 2)
	assert.Equal(t, "first", art.PathParams[0].Name)
	assert.Equal(t, "second", art.PathParams[1].Name)
}

func TestComposeNoContentRendersVoid(t *testing.T) {
	id := DeriveIdentifier("DELETE", "/orders/{orderId}", "deleteOrder")
	a := ir.Analysis{Responses: ir.ResponseSelection{
		Success: ir.SuccessResponse{Status: "204", NoContent: true},
	}}
	art := Compose("DELETE", "/orders/{orderId}", id, a, genConfig(config.V5, config.Hooks{Mutation: true}))

	assert.Equal(t, "void", art.ResponseType.Render())
	assert.Equal(t, "unknown", art.ErrorType.Render())
}

func TestComposeErrorUnion(t *testing.T) {
	id := DeriveIdentifier("GET", "/orders", "")
	a := ir.Analysis{Responses: ir.ResponseSelection{
		Errors: []*ir.TypeDescriptor{ir.Scalar("string"), ir.Scalar("number")},
	}}
	art := Compose("GET", "/orders", id, a, genConfig(config.V5, config.Hooks{Query: true}))

	assert.Equal(t, "string | number", art.ErrorType.Render())
}
