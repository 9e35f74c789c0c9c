package analyzer

import (
	"go/ast"
	"strings"

	"github.com/bend-n/raad-codegen/internal/parser"
)

// Kind is a primitive with a defined binary layout
type Kind int

const (
	Bool Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

var kinds = map[string]Kind{
	"bool":    Bool,
	"int8":    Int8,
	"uint8":   Uint8,
	"byte":    Uint8,
	"int16":   Int16,
	"uint16":  Uint16,
	"int32":   Int32,
	"rune":    Int32,
	"uint32":  Uint32,
	"int64":   Int64,
	"uint64":  Uint64,
	"float32": Float32,
	"float64": Float64,
}

// Builtins without a fixed, platform independent layout
var unsupported = map[string]string{
	"int":        "platform dependent size, use int32 or int64",
	"uint":       "platform dependent size, use uint32 or uint64",
	"uintptr":    "platform dependent size",
	"string":     "no fixed size",
	"complex64":  "not supported",
	"complex128": "not supported",
	"error":      "interface type",
	"any":        "interface type",
}

var kindNames = [...]string{"Bool", "Int8", "Uint8", "Int16", "Uint16", "Int32", "Uint32", "Int64", "Uint64", "Float32", "Float64"}

// LookupKind returns the primitive kind of a builtin type name
func LookupKind(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// Name returns the runtime function suffix: Write<Name>, Read<Name>
func (k Kind) Name() string {
	return kindNames[k]
}

// GoType returns the builtin type the runtime reads and writes
func (k Kind) GoType() string {
	// Int8 → "int8", Uint64 → "uint64"
	return strings.ToLower(kindNames[k])
}

// Size returns the encoded size in bytes
func (k Kind) Size() int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	default:
		return 8
	}
}

// Ordered reports whether the encoding depends on byte order
func (k Kind) Ordered() bool {
	return k.Size() > 1
}

// TypeRegistry tracks the local type declarations of a file: named types
// that may resolve to primitives or arrays, and annotated records
type TypeRegistry struct {
	aliases map[string]ast.Expr // named type → underlying type
	records map[string]*recordEntry
}

type recordEntry struct {
	generic bool
	anno    *parser.TypeAnnotation
	size    int // -1 until known or when not fixed
	sized   bool
	sizing  bool
	compute func() int
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		aliases: make(map[string]ast.Expr),
		records: make(map[string]*recordEntry),
	}
}

// RegisterAlias adds a named type declaration (e.g., type PageID uint64)
func (r *TypeRegistry) RegisterAlias(name string, underlying ast.Expr) {
	r.aliases[name] = underlying
}

// RegisterRecord adds an annotated record. size is called at most once,
// lazily, so records may refer to records declared later in the file.
func (r *TypeRegistry) RegisterRecord(s *parser.Schema, size func() int) {
	r.records[s.Name] = &recordEntry{generic: s.Generic(), anno: s.Anno, size: -1, compute: size}
}

// Underlying returns the underlying type of a named local type
func (r *TypeRegistry) Underlying(name string) (ast.Expr, bool) {
	expr, ok := r.aliases[name]
	return expr, ok
}

// IsRecord reports whether name is an annotated record, and whether it is generic
func (r *TypeRegistry) IsRecord(name string) (record, generic bool) {
	e, ok := r.records[name]
	if !ok {
		return false, false
	}
	return true, e.generic
}

// Directions returns which procedures are generated for a record
func (r *TypeRegistry) Directions(name string) (write, read bool) {
	e, ok := r.records[name]
	if !ok || e.anno == nil {
		return false, false
	}
	return e.anno.Write, e.anno.Read
}

// RecordSize returns the encoded size of a record, -1 if not fixed
func (r *TypeRegistry) RecordSize(name string) int {
	e, ok := r.records[name]
	if !ok || e.generic {
		return -1
	}
	if e.sized {
		return e.size
	}
	if e.sizing {
		return -1 // cycle
	}
	e.sizing = true
	e.size = e.compute()
	e.sizing = false
	e.sized = true
	return e.size
}
