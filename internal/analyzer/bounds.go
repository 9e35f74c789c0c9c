package analyzer

import (
	"strings"

	"github.com/bend-n/raad-codegen/internal/parser"
)

// Contract returns the constraint a type parameter must satisfy for the
// generated code to encode it, e.g. wire.WriterLE or wire.ReaderLE[T]
type Contract func(param string) string

// InjectBounds returns the type parameters of a generated procedure: every
// declared parameter keeps its constraint with the contract added to it
func InjectBounds(params []parser.TypeParam, contract Contract) []parser.TypeParam {
	out := make([]parser.TypeParam, len(params))
	for i, p := range params {
		out[i] = parser.TypeParam{
			Name:       p.Name,
			Constraint: MergeConstraint(p.Constraint, contract(p.Name)),
		}
	}
	return out
}

// MergeConstraint adds required to a declared constraint. An empty
// constraint is replaced; an interface literal gets required appended
// as another element; anything else is wrapped with it.
func MergeConstraint(declared, required string) string {
	declared = strings.TrimSpace(declared)
	switch declared {
	case "", "any", "interface{}":
		return required
	}

	if strings.HasPrefix(declared, "interface{") && strings.HasSuffix(declared, "}") {
		inner := strings.TrimSpace(declared[len("interface{") : len(declared)-1])
		if inner == "" {
			return required
		}
		return "interface{ " + inner + "; " + required + " }"
	}

	return "interface{ " + declared + "; " + required + " }"
}

// Clause formats a type parameter list: "[T wire.WriterLE, U fmt.Stringer]".
// Returns "" for no parameters.
func Clause(params []parser.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Constraint
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
