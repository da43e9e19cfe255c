package generator

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blimu-dev/query-gen/pkg/ir"
)

func loadFixture(t *testing.T) *openapi3.T {
	t.Helper()
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromFile("testdata/orders.yaml")
	require.NoError(t, err)
	return doc
}

func fixtureOp(t *testing.T, doc *openapi3.T, method, path string) *openapi3.Operation {
	t.Helper()
	item := doc.Paths.Find(path)
	require.NotNil(t, item, "path %s", path)
	op := item.GetOperation(method)
	require.NotNil(t, op, "%s %s", method, path)
	return op
}

func TestAnalyzePathParamsAlwaysRequired(t *testing.T) {
	doc := loadFixture(t)
	a := Analyze(fixtureOp(t, doc, "GET", "/users/{userId}/orders"), BuildRegistry(doc))

	require.Len(t, a.Params.Path, 1)
	// declared required: false, forced required anyway
	assert.True(t, a.Params.Path[0].Required)
	assert.Equal(t, "userId", a.Params.Path[0].Name)
}

func TestAnalyzeQueryPartition(t *testing.T) {
	doc := loadFixture(t)
	a := Analyze(fixtureOp(t, doc, "GET", "/users/{userId}/orders"), BuildRegistry(doc))

	require.Len(t, a.Params.Query, 2)
	assert.Equal(t, "page", a.Params.Query[0].Name)
	assert.Equal(t, "status", a.Params.Query[1].Name)
	assert.False(t, a.Params.RequiredQuery)
	assert.Equal(t, `"pending" | "shipped" | "delivered"`, a.Params.Query[1].Type.Render())
}

func TestAnalyzeErrorDedup(t *testing.T) {
	doc := loadFixture(t)
	a := Analyze(fixtureOp(t, doc, "GET", "/users/{userId}/orders"), BuildRegistry(doc))

	// 404 and 5XX point at the same schema; the union has one member
	require.Len(t, a.Responses.Errors, 1)
	assert.Equal(t, "{code: number; message: string}", a.Responses.Errors[0].Render())
}

func TestAnalyzeSuccessPick(t *testing.T) {
	doc := loadFixture(t)
	a := Analyze(fixtureOp(t, doc, "GET", "/users/{userId}/orders"), BuildRegistry(doc))

	assert.Equal(t, "200", a.Responses.Success.Status)
	assert.False(t, a.Responses.Success.NoContent)
	rendered := a.Responses.Success.Type.Render()
	assert.Contains(t, rendered, "Array<")
	// the Order self-reference is broken by name, not inlined forever
	assert.Contains(t, rendered, "parent?: Schema.Order")
}

func TestAnalyze204WinsRegardlessOfOrdering(t *testing.T) {
	doc := loadFixture(t)
	a := Analyze(fixtureOp(t, doc, "DELETE", "/orders/{orderId}"), BuildRegistry(doc))

	assert.True(t, a.Responses.Success.NoContent)
	assert.Equal(t, "204", a.Responses.Success.Status)
	assert.Nil(t, a.Responses.Success.Type)
}

func TestAnalyzeBodyAndDefaultError(t *testing.T) {
	doc := loadFixture(t)
	a := Analyze(fixtureOp(t, doc, "POST", "/orders"), BuildRegistry(doc))

	require.NotNil(t, a.Body)
	assert.Equal(t, "application/json", a.Body.ContentType)
	assert.True(t, a.Body.Required)
	assert.Equal(t, "{items: Array<string>; note?: string | null}", a.Body.Type.Render())

	// no explicit 4xx/5xx, so "default" becomes the sole error schema
	require.Len(t, a.Responses.Errors, 1)
	assert.Equal(t, "201", a.Responses.Success.Status)
}

func TestAnalyzeNoResponses(t *testing.T) {
	a := Analyze(&openapi3.Operation{}, ir.Registry{})
	assert.False(t, a.Responses.Success.NoContent)
	assert.Nil(t, a.Responses.Success.Type)
	assert.Empty(t, a.Responses.Errors)
	assert.Nil(t, a.Body)
}

func TestAnalyzeDefaultOnlyIsSuccess(t *testing.T) {
	op := &openapi3.Operation{Responses: &openapi3.Responses{}}
	desc := "catch-all"
	op.Responses.Set("default", &openapi3.ResponseRef{Value: &openapi3.Response{
		Description: &desc,
		Content: openapi3.Content{
			"application/json": &openapi3.MediaType{
				Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}},
			},
		},
	}})

	a := Analyze(op, ir.Registry{})
	assert.Equal(t, "default", a.Responses.Success.Status)
	require.NotNil(t, a.Responses.Success.Type)
	assert.Equal(t, "string", a.Responses.Success.Type.Render())
}

func TestAnalyzeDefaultIgnoredAsSuccessWhenErrorsExist(t *testing.T) {
	op := &openapi3.Operation{Responses: &openapi3.Responses{}}
	desc := "err"
	errRef := &openapi3.ResponseRef{Value: &openapi3.Response{
		Description: &desc,
		Content: openapi3.Content{
			"application/json": &openapi3.MediaType{
				Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}},
			},
		},
	}}
	op.Responses.Set("400", errRef)
	op.Responses.Set("default", errRef)

	a := Analyze(op, ir.Registry{})
	// default cannot be success here; success falls through to void
	assert.Empty(t, a.Responses.Success.Status)
	assert.Nil(t, a.Responses.Success.Type)
	require.Len(t, a.Responses.Errors, 1)
}
