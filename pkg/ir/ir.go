package ir

// SchemaKind tags the variant of a SchemaNode
type SchemaKind string

const (
	KindUnknown SchemaKind = "unknown"
	KindString  SchemaKind = "string"
	KindNumber  SchemaKind = "number"
	KindInteger SchemaKind = "integer"
	KindBoolean SchemaKind = "boolean"
	KindEnum    SchemaKind = "enum"
	KindArray   SchemaKind = "array"
	KindObject  SchemaKind = "object"
	KindRef     SchemaKind = "ref"
	KindAllOf   SchemaKind = "allOf"
	KindOneOf   SchemaKind = "oneOf"
	KindAnyOf   SchemaKind = "anyOf"
)

// SchemaNode is the canonical, closed representation of a schema as read from
// the document. It is built once at the boundary and never mutated afterwards;
// everything downstream works on this shape instead of inspecting raw
// document data ad hoc.
type SchemaNode struct {
	Kind     SchemaKind
	Format   string
	Nullable bool
	// HasType is false when the document declared no `type` for this node.
	// Distinguishes "untyped but nullable" from a typed node.
	HasType bool

	// Enum
	EnumValues []string
	EnumBase   SchemaKind

	// Object
	Properties []Property
	// AdditionalAllowed reflects `additionalProperties: true` or an absent
	// declaration; AdditionalSchema is set for `additionalProperties: <schema>`.
	AdditionalAllowed bool
	AdditionalSchema  *SchemaNode

	// Array
	Items *SchemaNode

	// Ref (component name)
	Ref string

	// Compositions (allOf/oneOf/anyOf)
	Members []*SchemaNode
}

// Property represents a field in an object schema, in sorted name order for
// deterministic output
type Property struct {
	Name     string
	Schema   *SchemaNode
	Required bool
}

// Registry holds the document's component schemas by name
type Registry map[string]*SchemaNode

// ModelDef is a named component schema paired with its shallow-resolved type,
// rendered into the shared schema file
type ModelDef struct {
	Name string
	Type *TypeDescriptor
}
