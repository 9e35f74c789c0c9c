package parser

import (
	"go/ast"
	"go/token"
	"strings"
)

// FieldKind tells how generated code addresses a field
type FieldKind int

const (
	Named      FieldKind = iota // accessed and constructed by label
	Positional                  // no usable label, constructed by position
)

func (k FieldKind) String() string {
	switch k {
	case Named:
		return "named"
	case Positional:
		return "positional"
	default:
		return "unknown"
	}
}

// TypeParam is one declared type parameter and the source text of its constraint
type TypeParam struct {
	Name       string
	Constraint string
}

// Field is one record field in declaration order
type Field struct {
	Kind  FieldKind
	Label string // declared label; empty for positional fields
	Index uint16 // zero-based declaration position
	Type  string // source text of the type expression
	Expr  ast.Expr

	// Accessor is the selector used to read the field from a value: the
	// label, or the base type name of an embedded field. Empty for blank
	// (_) fields, which have no accessor.
	Accessor string

	Markers Markers
	Pos     token.Position
}

// Blank reports whether the field is a `_` padding field
func (f Field) Blank() bool {
	return f.Kind == Positional && f.Accessor == ""
}

// Name returns a human readable name for diagnostics
func (f Field) Name() string {
	switch {
	case f.Kind == Named:
		return f.Label
	case f.Accessor != "":
		return f.Accessor
	default:
		return "_"
	}
}

// Schema is the generation-time description of an annotated record
type Schema struct {
	Name          string
	TypeParams    []TypeParam
	GenericClause string // original type parameter list, e.g. "[T any, U fmt.Stringer]"
	Fields        []Field
	Anno          *TypeAnnotation
	Pos           token.Position
}

// Generic reports whether the record declares type parameters
func (s *Schema) Generic() bool {
	return len(s.TypeParams) > 0
}

// ParamNames returns the type parameter names in declaration order
func (s *Schema) ParamNames() []string {
	names := make([]string, len(s.TypeParams))
	for i, p := range s.TypeParams {
		names[i] = p.Name
	}
	return names
}

// TypeArgs returns "[T, U]" for generic records and "" otherwise
func (s *Schema) TypeArgs() string {
	if !s.Generic() {
		return ""
	}
	return "[" + strings.Join(s.ParamNames(), ", ") + "]"
}

// Instance is the record type as referenced from generated code, e.g. "Pair[T, U]"
func (s *Schema) Instance() string {
	return s.Name + s.TypeArgs()
}

// HasPositional reports whether any field is positional
func (s *Schema) HasPositional() bool {
	for _, f := range s.Fields {
		if f.Kind == Positional {
			return true
		}
	}
	return false
}

// Import is an import spec of the source file
type Import struct {
	Name string // explicit package name, empty if none
	Path string
}

// TypeDef is a non-annotated local type declaration, kept so the analyzer can
// resolve named primitive and array types.
type TypeDef struct {
	Name       string
	Underlying ast.Expr
	Generic    bool
}

// File is everything the generator needs from one source file
type File struct {
	Filename        string
	Package         string
	BuildConstraint string // the //go:build line, if any
	Imports         []Import
	Schemas         []*Schema
	Defs            []TypeDef
}
