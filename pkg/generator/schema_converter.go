package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaNodeFromRef normalizes an OpenAPI schema reference into the closed
// SchemaNode variant. References into the component registry are kept by
// name; anything the converter cannot classify becomes KindUnknown rather
// than an error.
func SchemaNodeFromRef(sr *openapi3.SchemaRef) *ir.SchemaNode {
	if sr == nil {
		return &ir.SchemaNode{Kind: ir.KindUnknown}
	}
	if sr.Ref != "" {
		if name := refName(sr.Ref); name != "" {
			return &ir.SchemaNode{Kind: ir.KindRef, Ref: name}
		}
		return &ir.SchemaNode{Kind: ir.KindUnknown}
	}
	if sr.Value == nil {
		return &ir.SchemaNode{Kind: ir.KindUnknown}
	}
	s := sr.Value

	// Compositions
	if len(s.AllOf) > 0 {
		return &ir.SchemaNode{Kind: ir.KindAllOf, Members: convertMembers(s.AllOf), Nullable: s.Nullable}
	}
	if len(s.OneOf) > 0 {
		return &ir.SchemaNode{Kind: ir.KindOneOf, Members: convertMembers(s.OneOf), Nullable: s.Nullable}
	}
	if len(s.AnyOf) > 0 {
		return &ir.SchemaNode{Kind: ir.KindAnyOf, Members: convertMembers(s.AnyOf), Nullable: s.Nullable}
	}

	// Enum (non-string values coerced to their string representation)
	if len(s.Enum) > 0 {
		vals := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			vals = append(vals, fmt.Sprint(v))
		}
		return &ir.SchemaNode{Kind: ir.KindEnum, EnumValues: vals, EnumBase: enumBaseKind(s), Nullable: s.Nullable, HasType: s.Type != nil}
	}

	if s.Type != nil {
		switch {
		case s.Type.Is(openapi3.TypeString):
			return &ir.SchemaNode{Kind: ir.KindString, Format: s.Format, Nullable: s.Nullable, HasType: true}
		case s.Type.Is(openapi3.TypeInteger):
			return &ir.SchemaNode{Kind: ir.KindInteger, Nullable: s.Nullable, HasType: true}
		case s.Type.Is(openapi3.TypeNumber):
			return &ir.SchemaNode{Kind: ir.KindNumber, Nullable: s.Nullable, HasType: true}
		case s.Type.Is(openapi3.TypeBoolean):
			return &ir.SchemaNode{Kind: ir.KindBoolean, Nullable: s.Nullable, HasType: true}
		case s.Type.Is(openapi3.TypeArray):
			return &ir.SchemaNode{Kind: ir.KindArray, Items: SchemaNodeFromRef(s.Items), Nullable: s.Nullable, HasType: true}
		case s.Type.Is(openapi3.TypeObject):
			return convertObject(s)
		}
	}
	return &ir.SchemaNode{Kind: ir.KindUnknown, Nullable: s.Nullable}
}

// BuildRegistry converts components.schemas into the node registry the
// resolver consumes
func BuildRegistry(doc *openapi3.T) ir.Registry {
	reg := ir.Registry{}
	if doc == nil || doc.Components == nil {
		return reg
	}
	for name, sr := range doc.Components.Schemas {
		reg[name] = SchemaNodeFromRef(sr)
	}
	return reg
}

func convertMembers(refs openapi3.SchemaRefs) []*ir.SchemaNode {
	subs := make([]*ir.SchemaNode, 0, len(refs))
	for _, sub := range refs {
		subs = append(subs, SchemaNodeFromRef(sub))
	}
	return subs
}

func convertObject(s *openapi3.Schema) *ir.SchemaNode {
	node := &ir.SchemaNode{Kind: ir.KindObject, Nullable: s.Nullable, HasType: true}

	// Properties in sorted name order for deterministic output
	names := make([]string, 0, len(s.Properties))
	for n := range s.Properties {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		required := false
		for _, r := range s.Required {
			if r == n {
				required = true
				break
			}
		}
		node.Properties = append(node.Properties, ir.Property{
			Name:     n,
			Schema:   SchemaNodeFromRef(s.Properties[n]),
			Required: required,
		})
	}

	if s.AdditionalProperties.Schema != nil {
		node.AdditionalSchema = SchemaNodeFromRef(s.AdditionalProperties.Schema)
	} else {
		// Absent means open by default
		node.AdditionalAllowed = s.AdditionalProperties.Has == nil || *s.AdditionalProperties.Has
	}
	return node
}

func refName(ref string) string {
	if strings.HasPrefix(ref, "#/components/schemas/") {
		return strings.TrimPrefix(ref, "#/components/schemas/")
	}
	parts := strings.Split(ref, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return ""
}

func enumBaseKind(s *openapi3.Schema) ir.SchemaKind {
	if s.Type != nil {
		switch {
		case s.Type.Is(openapi3.TypeString):
			return ir.KindString
		case s.Type.Is(openapi3.TypeInteger):
			return ir.KindInteger
		case s.Type.Is(openapi3.TypeNumber):
			return ir.KindNumber
		case s.Type.Is(openapi3.TypeBoolean):
			return ir.KindBoolean
		}
	}
	if len(s.Enum) > 0 {
		switch s.Enum[0].(type) {
		case string:
			return ir.KindString
		case int, int32, int64:
			return ir.KindInteger
		case float32, float64:
			return ir.KindNumber
		case bool:
			return ir.KindBoolean
		}
	}
	return ir.KindUnknown
}
