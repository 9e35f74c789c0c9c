package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// TypeAnnotation holds parsed @raad annotation
type TypeAnnotation struct {
	Write bool // emit WriteLE/WriteBE
	Read  bool // emit ReadLE/ReadBE
}

var (
	annotationRe = regexp.MustCompile(`^@raad(?:\s+(.*))?$`)
	pairRe       = regexp.MustCompile(`^(\w+)=([\w-]+)$`)
)

// ParseAnnotation parses @raad annotation from comment text
//
// Expected format:
//
//	// @raad
//	// @raad codec=both
//	// @raad codec=write
//	// @raad codec=read
//
// Params are space-separated key=value pairs. found is false when the line
// carries no annotation at all.
func ParseAnnotation(comment string) (anno *TypeAnnotation, found bool, err error) {
	matches := annotationRe.FindStringSubmatch(strings.TrimSpace(comment))
	if matches == nil {
		return nil, false, nil
	}

	anno = &TypeAnnotation{Write: true, Read: true}
	params := strings.Fields(matches[1])
	for _, param := range params {
		pair := pairRe.FindStringSubmatch(param)
		if pair == nil {
			return nil, true, fmt.Errorf("%w: malformed parameter %q", ErrBadAnnotation, param)
		}

		key, value := pair[1], pair[2]
		switch key {
		case "codec":
			switch value {
			case "both":
				anno.Write, anno.Read = true, true
			case "write":
				anno.Write, anno.Read = true, false
			case "read":
				anno.Write, anno.Read = false, true
			default:
				return nil, true, fmt.Errorf("%w: codec must be 'both', 'write' or 'read', got: %s", ErrBadAnnotation, value)
			}

		default:
			return nil, true, fmt.Errorf("%w: unknown parameter: %s", ErrBadAnnotation, key)
		}
	}

	return anno, true, nil
}

// FindAnnotation searches comment lines for @raad annotation
// Returns the annotation and true if found
func FindAnnotation(comments []string) (*TypeAnnotation, bool, error) {
	for _, comment := range comments {
		anno, found, err := ParseAnnotation(comment)
		if found {
			return anno, true, err
		}
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @raad codec=write" → "@raad codec=write"
// "/* @raad */" → "@raad"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	// Remove // prefix
	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		return line
	}

	// Remove /* */ wrapper
	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		return line
	}

	return line
}
