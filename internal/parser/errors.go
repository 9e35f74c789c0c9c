package parser

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	// ErrUnsupportedShape is returned for an annotated type that is not a struct.
	ErrUnsupportedShape = errors.New("unsupported shape: only struct types are supported for codegen")
	// ErrBadAnnotation is returned for a malformed @raad annotation.
	ErrBadAnnotation = errors.New("invalid @raad annotation")
	// ErrBadMarker is returned for a malformed raad struct tag.
	ErrBadMarker = errors.New("invalid raad marker")
)

// DeclError reports a generation failure at a declaration site
type DeclError struct {
	Pos  token.Position
	Name string
	Err  error
}

func (e *DeclError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Pos, e.Name, e.Err)
}

func (e *DeclError) Unwrap() error {
	return e.Err
}
