package parser

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/fatih/structtag"
)

// TagKey is the struct tag namespace read by the generator
const TagKey = "raad"

// Markers holds the raad struct tag markers of a field
type Markers struct {
	// Equals is set by the "equals" marker.
	Equals bool
	// EqualsTo names the constant or variable a decoded value must equal.
	// Empty for a bare "equals", which is documentation only.
	EqualsTo string
}

// ParseMarkers parses the raad markers out of a raw struct tag
//
// Semantics:
//   - `raad:"equals"`        : field is a fixed constant; not enforced
//   - `raad:"equals=Magic"`  : read fails unless the value equals Magic
//   - `raad:"equals=pkg.V"`  : same, with a qualified identifier
//
// Tags of other namespaces are ignored.
func ParseMarkers(tag string) (Markers, error) {
	var m Markers
	if tag == "" {
		return m, nil
	}

	tags, err := structtag.Parse(tag)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ErrBadMarker, err)
	}
	if tags == nil {
		return m, nil
	}
	t, err := tags.Get(TagKey)
	if err != nil {
		return m, nil // no raad tag
	}

	for _, part := range append([]string{t.Name}, t.Options...) {
		key, value, hasValue := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "equals":
			m.Equals = true
			if hasValue {
				if !isQualifiedIdent(value) {
					return m, fmt.Errorf("%w: equals= requires an identifier, got %q", ErrBadMarker, value)
				}
				m.EqualsTo = value
			}
		case "":
			return m, fmt.Errorf("%w: empty marker", ErrBadMarker)
		default:
			return m, fmt.Errorf("%w: unknown marker: %s", ErrBadMarker, key)
		}
	}

	return m, nil
}

func isQualifiedIdent(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if !token.IsIdentifier(p) {
			return false
		}
	}
	return true
}
