package generator

import (
	"strings"

	"github.com/blimu-dev/query-gen/pkg/ir"
	"github.com/blimu-dev/query-gen/pkg/utils"
)

// DeriveIdentifier names an operation. The declared operationId wins when
// present; otherwise the name is derived from the method and path. Pure and
// order-independent: the same inputs always produce the same identifier,
// because the same operation is named once for the artifact and once inside
// the rendered query-key factory.
func DeriveIdentifier(method, path, declaredID string) ir.Identifier {
	raw := declaredID
	if raw == "" {
		raw = strings.ToLower(method) + strings.Join(pathTokens(path), "")
	}
	return ir.Identifier{Raw: raw, Pascal: utils.Capitalize(raw)}
}

// FileName derives the generated file name for an operation from the same
// inputs the identifier uses. Both must tokenize path placeholders
// identically or file locations and identifiers disagree.
func FileName(method, path, declaredID string) string {
	return utils.ToKebabCase(DeriveIdentifier(method, path, declaredID).Raw) + ".ts"
}

// pathTokens converts each path segment into an identifier token: a literal
// segment becomes its PascalCase form, a {placeholder} becomes By + the
// PascalCase name.
func pathTokens(path string) []string {
	segments := strings.Split(path, "/")
	tokens := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			tokens = append(tokens, "By"+utils.ToPascalCase(seg[1:len(seg)-1]))
			continue
		}
		tokens = append(tokens, utils.ToPascalCase(seg))
	}
	return tokens
}
