package ir

import "strings"

// DescriptorKind tags the variant of a resolved TypeDescriptor
type DescriptorKind string

const (
	DescScalar       DescriptorKind = "scalar"
	DescLiteral      DescriptorKind = "literal"
	DescArray        DescriptorKind = "array"
	DescStruct       DescriptorKind = "struct"
	DescUnion        DescriptorKind = "union"
	DescIntersection DescriptorKind = "intersection"
	DescMap          DescriptorKind = "map"
	DescOpaque       DescriptorKind = "opaque"
	DescNamed        DescriptorKind = "named"
)

// TypeDescriptor is the resolved, renderer-ready form of a schema. Descriptors
// are created fresh per resolution call and never mutated after construction.
// Render is pure and context-free: the same descriptor renders to the same
// text wherever it appears.
type TypeDescriptor struct {
	Kind DescriptorKind
	// Name holds the scalar keyword for DescScalar and the component name for
	// DescNamed.
	Name string
	// Literals are pre-quoted literal texts for DescLiteral.
	Literals []string
	// Elem is the array element or map value type.
	Elem *TypeDescriptor
	// Fields are struct fields in declaration order.
	Fields []FieldDescriptor
	// Members are union/intersection members in insertion order, deduplicated
	// by rendered text for unions.
	Members []*TypeDescriptor
	// Nullable widens the rendered type with `| null`.
	Nullable bool
}

// FieldDescriptor is one struct field. Optional and Nullable stay separate
// booleans instead of being folded into the type text so the renderer can
// apply language-specific syntax; NeedsQuoting marks names that are not bare
// identifiers and must render quoted verbatim.
type FieldDescriptor struct {
	Name         string
	Type         *TypeDescriptor
	Optional     bool
	Nullable     bool
	NeedsQuoting bool
}

// Scalar keyword descriptors
func Scalar(name string) *TypeDescriptor { return &TypeDescriptor{Kind: DescScalar, Name: name} }

// Opaque is the escape-hatch type for anything resolution cannot classify
func Opaque() *TypeDescriptor { return &TypeDescriptor{Kind: DescOpaque} }

// Named is a reference to a component by name, used where a cycle must be
// broken instead of inlined
func Named(ref string) *TypeDescriptor { return &TypeDescriptor{Kind: DescNamed, Name: ref} }

// Render produces the TypeScript text for the descriptor
func (d *TypeDescriptor) Render() string {
	if d == nil {
		return "unknown"
	}
	t := d.renderBase()
	if d.Nullable && t != "null" {
		t += " | null"
	}
	return t
}

func (d *TypeDescriptor) renderBase() string {
	switch d.Kind {
	case DescScalar:
		return d.Name
	case DescLiteral:
		if len(d.Literals) == 0 {
			return "unknown"
		}
		return strings.Join(d.Literals, " | ")
	case DescArray:
		inner := d.Elem.Render()
		// Wrap unions/intersections in parentheses inside Array<>
		if strings.Contains(inner, " | ") || strings.Contains(inner, " & ") {
			inner = "(" + inner + ")"
		}
		return "Array<" + inner + ">"
	case DescStruct:
		if len(d.Fields) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(d.Fields))
		for _, f := range d.Fields {
			parts = append(parts, f.render())
		}
		return "{" + strings.Join(parts, "; ") + "}"
	case DescUnion:
		return joinMembers(d.Members, " | ")
	case DescIntersection:
		return joinMembers(d.Members, " & ")
	case DescMap:
		return "Record<string, " + d.Elem.Render() + ">"
	case DescNamed:
		if d.Name == "" {
			return "unknown"
		}
		return "Schema." + d.Name
	default:
		return "unknown"
	}
}

func (f FieldDescriptor) render() string {
	name := f.Name
	if f.NeedsQuoting {
		name = `"` + name + `"`
	}
	sep := ": "
	if f.Optional {
		sep = "?: "
	}
	t := f.Type.Render()
	if f.Nullable && t != "null" && !strings.HasSuffix(t, "| null") {
		t += " | null"
	}
	return name + sep + t
}

func joinMembers(members []*TypeDescriptor, sep string) string {
	if len(members) == 0 {
		return "unknown"
	}
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, m.Render())
	}
	return strings.Join(parts, sep)
}
