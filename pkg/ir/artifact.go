package ir

// Param is a resolved path or query parameter
type Param struct {
	Name     string
	Required bool
	Type     *TypeDescriptor
}

// ParameterGroup partitions an operation's declared parameters by location.
// Path parameters are always required; RequiredQuery is true when at least
// one query parameter is required.
type ParameterGroup struct {
	Path          []Param
	Query         []Param
	RequiredQuery bool
}

// BodySchema is the single request body schema chosen for an operation
type BodySchema struct {
	ContentType string
	Required    bool
	Type        *TypeDescriptor
}

// SuccessResponse is the response chosen as the operation's success shape.
// NoContent implies the response renders as void regardless of Type.
type SuccessResponse struct {
	Status    string
	Type      *TypeDescriptor
	NoContent bool
}

// ResponseSelection carries the success pick plus the deduplicated error
// schemas collected from 4xx/5xx entries
type ResponseSelection struct {
	Success SuccessResponse
	Errors  []*TypeDescriptor
}

// Analysis is the full output of analyzing one operation against a document
type Analysis struct {
	Params    ParameterGroup
	Body      *BodySchema
	Responses ResponseSelection
}

// Identifier is the derived operation name. Pascal is Raw with only its
// leading character capitalized, so deriving twice is stable.
type Identifier struct {
	Raw    string
	Pascal string
}

// RequiredFlags records which request parts make the variables argument
// mandatory
type RequiredFlags struct {
	Path  bool
	Query bool
	Body  bool
}

// CacheKey is the base cache key tuple for an operation. Its shape is fixed:
// (namespace, upper-case method, raw path template, full variables object),
// independent of which hooks are enabled, so regeneration with a different
// hook configuration never moves existing cache entries.
type CacheKey struct {
	Namespace string
	Method    string
	Path      string
}

// VersionTraits describes how generated hooks differ per react-query major
// version. One table entry fully describes a version; nothing else branches
// on the version.
type VersionTraits struct {
	// Import is the module specifier hooks import from.
	Import string
	// SuspenseHooks is true when the version ships useSuspenseQuery.
	SuspenseHooks bool
	// TypedPageParam is true when useInfiniteQuery threads an explicit
	// page-parameter type argument and wraps data in InfiniteData.
	TypedPageParam bool
	// NeedsGetNextPageParam is true when the caller must supply
	// getNextPageParam in the hook options.
	NeedsGetNextPageParam bool
}

// HookPlan is the subset and shape of call-sites to generate for one
// operation
type HookPlan struct {
	Query    bool
	Suspense bool
	Mutation bool
	Infinite bool
	Traits   VersionTraits
}

// OperationArtifact is the fully resolved, renderer-ready description of one
// operation. Constructed once per (operation, configuration) pair and handed
// straight to the renderer.
type OperationArtifact struct {
	OperationName string
	DisplayName   string
	Method        string
	Path          string

	PathParams      []Param
	QueryParams     []Param
	BodyType        *TypeDescriptor
	BodyContentType string
	ResponseType    *TypeDescriptor
	ErrorType       *TypeDescriptor

	Required RequiredFlags
	// AllowEmptyVariables is true when no request part is required, so
	// call-sites may omit the variables argument entirely.
	AllowEmptyVariables bool

	CacheKey CacheKey
	Hooks    HookPlan
}
