package generator

import (
	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/blimu-dev/query-gen/pkg/utils"
)

// maxResolveDepth caps Struct/Array expansion for deep but acyclic documents.
// Self-references are caught by the visiting set; this bound only keeps the
// rendered text readable when a document nests heavily.
const maxResolveDepth = 4

// Resolve converts a schema node into a renderer-ready type descriptor.
// Resolution never fails: anything it cannot classify becomes the opaque
// escape-hatch type, so imperfect documents still generate usable code.
func Resolve(node *ir.SchemaNode, reg ir.Registry) *ir.TypeDescriptor {
	return resolve(node, reg, 0, map[string]bool{})
}

// ResolveShallow resolves a node with every component treated as already
// expanding, so references render by name instead of being inlined. Used for
// the shared schema file where each component is emitted under its own name.
func ResolveShallow(node *ir.SchemaNode, reg ir.Registry) *ir.TypeDescriptor {
	visiting := make(map[string]bool, len(reg))
	for name := range reg {
		visiting[name] = true
	}
	return resolve(node, reg, 0, visiting)
}

// resolve carries the set of reference ids currently being expanded on this
// call stack. A ref already in the set is a cycle and resolves to a named
// reference instead of recursing. The set is local to one resolution call
// and must not be shared across concurrent calls.
func resolve(node *ir.SchemaNode, reg ir.Registry, depth int, visiting map[string]bool) *ir.TypeDescriptor {
	if node == nil {
		return ir.Opaque()
	}

	var d *ir.TypeDescriptor
	switch node.Kind {
	case ir.KindRef:
		if visiting[node.Ref] {
			return ir.Named(node.Ref)
		}
		target, ok := reg[node.Ref]
		if !ok {
			return ir.Opaque()
		}
		visiting[node.Ref] = true
		d = resolve(target, reg, depth, visiting)
		delete(visiting, node.Ref)
		return d

	case ir.KindString:
		if node.Format == "binary" {
			d = ir.Scalar("Blob")
		} else {
			// date/date-time formats stay plain strings; no date coercion
			d = ir.Scalar("string")
		}

	case ir.KindInteger, ir.KindNumber:
		d = ir.Scalar("number")

	case ir.KindBoolean:
		d = ir.Scalar("boolean")

	case ir.KindEnum:
		d = literalDescriptor(node)

	case ir.KindArray:
		if depth >= maxResolveDepth {
			d = &ir.TypeDescriptor{Kind: ir.DescArray, Elem: ir.Opaque()}
		} else {
			d = &ir.TypeDescriptor{Kind: ir.DescArray, Elem: resolve(node.Items, reg, depth+1, visiting)}
		}

	case ir.KindObject:
		d = resolveObject(node, reg, depth, visiting)

	case ir.KindAllOf:
		// Members keep their own shape; the result is a plain intersection,
		// not a structural merge.
		members := make([]*ir.TypeDescriptor, 0, len(node.Members))
		for _, m := range node.Members {
			members = append(members, resolve(m, reg, depth, visiting))
		}
		if len(members) == 1 {
			d = members[0]
		} else {
			d = &ir.TypeDescriptor{Kind: ir.DescIntersection, Members: members}
		}

	case ir.KindOneOf, ir.KindAnyOf:
		members := make([]*ir.TypeDescriptor, 0, len(node.Members))
		for _, m := range node.Members {
			members = append(members, resolve(m, reg, depth, visiting))
		}
		d = Union(members)

	default:
		d = ir.Opaque()
	}

	if node.Nullable {
		d.Nullable = true
	}
	return d
}

func resolveObject(node *ir.SchemaNode, reg ir.Registry, depth int, visiting map[string]bool) *ir.TypeDescriptor {
	if len(node.Properties) == 0 {
		switch {
		case node.AdditionalSchema != nil:
			return &ir.TypeDescriptor{Kind: ir.DescMap, Elem: resolve(node.AdditionalSchema, reg, depth+1, visiting)}
		case node.AdditionalAllowed:
			return &ir.TypeDescriptor{Kind: ir.DescMap, Elem: ir.Opaque()}
		default:
			return &ir.TypeDescriptor{Kind: ir.DescStruct}
		}
	}
	if depth >= maxResolveDepth {
		return &ir.TypeDescriptor{Kind: ir.DescMap, Elem: ir.Opaque()}
	}
	fields := make([]ir.FieldDescriptor, 0, len(node.Properties))
	for _, p := range node.Properties {
		ft := resolve(p.Schema, reg, depth+1, visiting)
		// Nullability is reported on the field, not folded into the type text
		nullable := ft.Nullable
		if nullable {
			stripped := *ft
			stripped.Nullable = false
			ft = &stripped
		}
		fields = append(fields, ir.FieldDescriptor{
			Name:         p.Name,
			Type:         ft,
			Optional:     !p.Required,
			Nullable:     nullable,
			NeedsQuoting: !utils.IsBareIdentifier(p.Name),
		})
	}
	return &ir.TypeDescriptor{Kind: ir.DescStruct, Fields: fields}
}

// Union builds a union deduplicated by rendered text, preserving insertion
// order. A single distinct member collapses to itself.
func Union(members []*ir.TypeDescriptor) *ir.TypeDescriptor {
	seen := map[string]bool{}
	out := make([]*ir.TypeDescriptor, 0, len(members))
	for _, m := range members {
		key := m.Render()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	if len(out) == 1 {
		return out[0]
	}
	return &ir.TypeDescriptor{Kind: ir.DescUnion, Members: out}
}

func literalDescriptor(node *ir.SchemaNode) *ir.TypeDescriptor {
	if len(node.EnumValues) == 0 {
		return ir.Opaque()
	}
	lits := make([]string, 0, len(node.EnumValues))
	for _, v := range node.EnumValues {
		switch node.EnumBase {
		case ir.KindNumber, ir.KindInteger:
			lits = append(lits, v)
		case ir.KindBoolean:
			if v == "true" || v == "false" {
				lits = append(lits, v)
			} else {
				lits = append(lits, `"`+v+`"`)
			}
		default:
			lits = append(lits, `"`+v+`"`)
		}
	}
	return &ir.TypeDescriptor{Kind: ir.DescLiteral, Literals: lits}
}
