package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"strconv"

	"go.uber.org/multierr"

	"github.com/bend-n/raad-codegen/internal/parser"
)

var (
	// ErrUnsupportedType is returned for a field type without a fixed binary layout.
	ErrUnsupportedType = errors.New("unsupported field type")
	// ErrMissingDirection is returned when a nested record does not generate
	// the procedure its parent needs.
	ErrMissingDirection = errors.New("nested record lacks codec direction")
)

// PlanKind is how a field type is encoded
type PlanKind int

const (
	PrimitivePlan PlanKind = iota // builtin or named primitive, one runtime call
	BytesPlan                     // [N]byte, one slice write
	ArrayPlan                     // [N]E, element by element in index order
	ParamPlan                     // type parameter, through the wire contracts
	RecordPlan                    // generic local record, through its generated functions
	CodecPlan                     // any other named type, through the wire contracts
)

func (k PlanKind) String() string {
	switch k {
	case PrimitivePlan:
		return "primitive"
	case BytesPlan:
		return "bytes"
	case ArrayPlan:
		return "array"
	case ParamPlan:
		return "param"
	case RecordPlan:
		return "record"
	case CodecPlan:
		return "codec"
	default:
		return "unknown"
	}
}

// Plan describes how one type is written and read
type Plan struct {
	Kind     PlanKind
	Type     string   // type as written in source
	Prim     Kind     // PrimitivePlan
	Convert  bool     // PrimitivePlan: Type is a named type over Prim
	Len      int      // arrays; -1 when the length is not a literal
	Elem     *Plan    // ArrayPlan
	Record   string   // local record name, if any
	TypeArgs []string // RecordPlan
	Size     int      // encoded size in bytes; -1 if not fixed
}

// FieldPlan pairs a field with its encoding plan
type FieldPlan struct {
	Field parser.Field
	Plan  *Plan
}

// Record is an analyzed schema ready for emission
type Record struct {
	Schema *parser.Schema
	Fields []FieldPlan
	Size   int // encoded size in bytes; -1 if not fixed
}

// Fixed reports whether every encoding of the record has the same size
func (r *Record) Fixed() bool {
	return r.Size >= 0
}

// Result is the analysis of one source file
type Result struct {
	File     *parser.File
	Records  []*Record
	Registry *TypeRegistry
	Warnings []string
}

// Analyze resolves the field plans of every record in a parsed file
func Analyze(file *parser.File) (*Result, error) {
	if file == nil {
		return nil, fmt.Errorf("file is nil")
	}

	reg := NewTypeRegistry()
	for _, def := range file.Defs {
		if !def.Generic {
			reg.RegisterAlias(def.Name, def.Underlying)
		}
	}
	for _, s := range file.Schemas {
		s := s
		reg.RegisterRecord(s, func() int {
			fields, err := resolveFields(reg, s)
			if err != nil {
				return -1
			}
			return totalSize(fields)
		})
	}

	res := &Result{File: file, Registry: reg}
	var errs error
	for _, s := range file.Schemas {
		fields, err := resolveFields(reg, s)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := checkDirections(reg, s, fields); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := checkMarkers(s, fields); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		rec := &Record{Schema: s, Fields: fields, Size: -1}
		if !s.Generic() {
			rec.Size = reg.RecordSize(s.Name)
		}
		res.Records = append(res.Records, rec)

		for _, f := range fields {
			if f.Field.Markers.Equals && f.Field.Markers.EqualsTo == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s.%s: bare equals marker is not enforced, use equals=<identifier>",
					f.Field.Pos, s.Name, f.Field.Name()))
			}
		}
	}

	if errs != nil {
		return nil, errs
	}
	return res, nil
}

func resolveFields(reg *TypeRegistry, s *parser.Schema) ([]FieldPlan, error) {
	rs := &resolver{
		reg:      reg,
		params:   make(map[string]bool, len(s.TypeParams)),
		visiting: make(map[string]bool),
	}
	for _, p := range s.TypeParams {
		rs.params[p.Name] = true
	}

	var errs error
	fields := make([]FieldPlan, 0, len(s.Fields))
	for _, f := range s.Fields {
		plan, err := rs.resolve(f.Expr)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s.%s: %w", f.Pos, s.Name, f.Name(), err))
			continue
		}
		fields = append(fields, FieldPlan{Field: f, Plan: plan})
	}
	return fields, errs
}

func totalSize(fields []FieldPlan) int {
	size := 0
	for _, f := range fields {
		if f.Plan.Size < 0 {
			return -1
		}
		size += f.Plan.Size
	}
	return size
}

// checkMarkers fails when a read procedure would compare a value whose
// type is not known to be comparable
func checkMarkers(s *parser.Schema, fields []FieldPlan) error {
	if !s.Anno.Read {
		return nil
	}
	var errs error
	for _, f := range fields {
		if f.Field.Markers.EqualsTo == "" {
			continue
		}
		p := f.Plan
		for p.Kind == ArrayPlan {
			p = p.Elem
		}
		if p.Kind == ParamPlan || p.Kind == RecordPlan {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s.%s: %w: equals needs a comparable type, %s depends on type parameters",
				f.Field.Pos, s.Name, f.Field.Name(), parser.ErrBadMarker, f.Plan.Type))
		}
	}
	return errs
}

// checkDirections fails when a field is a local record that does not
// generate a procedure this record generates
func checkDirections(reg *TypeRegistry, s *parser.Schema, fields []FieldPlan) error {
	var errs error
	for _, f := range fields {
		p := f.Plan
		for p.Kind == ArrayPlan {
			p = p.Elem
		}
		if p.Record == "" {
			continue
		}
		write, read := reg.Directions(p.Record)
		if s.Anno.Write && !write {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s.%s: %w: %s has no write procedure", f.Field.Pos, s.Name, f.Field.Name(), ErrMissingDirection, p.Record))
		}
		if s.Anno.Read && !read {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s.%s: %w: %s has no read procedure", f.Field.Pos, s.Name, f.Field.Name(), ErrMissingDirection, p.Record))
		}
	}
	return errs
}

type resolver struct {
	reg      *TypeRegistry
	params   map[string]bool
	visiting map[string]bool // named types being resolved
}

func (rs *resolver) resolve(expr ast.Expr) (*Plan, error) {
	typ := types.ExprString(expr)

	switch t := expr.(type) {
	case *ast.ParenExpr:
		return rs.resolve(t.X)

	case *ast.Ident:
		if rs.params[t.Name] {
			return &Plan{Kind: ParamPlan, Type: typ, Size: -1}, nil
		}
		if k, ok := LookupKind(t.Name); ok {
			return &Plan{Kind: PrimitivePlan, Type: typ, Prim: k, Size: k.Size()}, nil
		}
		if reason, ok := unsupported[t.Name]; ok {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, t.Name, reason)
		}
		if record, generic := rs.reg.IsRecord(t.Name); record {
			if generic {
				return nil, fmt.Errorf("%w: generic record %s used without type arguments", ErrUnsupportedType, t.Name)
			}
			return &Plan{Kind: CodecPlan, Type: typ, Record: t.Name, Size: rs.reg.RecordSize(t.Name)}, nil
		}
		if underlying, ok := rs.reg.Underlying(t.Name); ok {
			return rs.named(t.Name, underlying), nil
		}
		// Declared in another file or package
		return &Plan{Kind: CodecPlan, Type: typ, Size: -1}, nil

	case *ast.SelectorExpr:
		return &Plan{Kind: CodecPlan, Type: typ, Size: -1}, nil

	case *ast.ArrayType:
		if t.Len == nil {
			return nil, fmt.Errorf("%w: slice %s (no fixed size)", ErrUnsupportedType, typ)
		}
		if _, ok := t.Len.(*ast.Ellipsis); ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
		}
		elem, err := rs.resolve(t.Elt)
		if err != nil {
			return nil, err
		}

		p := &Plan{Kind: ArrayPlan, Type: typ, Len: arrayLen(t.Len), Elem: elem, Size: -1}
		if elem.Kind == PrimitivePlan && elem.Prim == Uint8 && !elem.Convert {
			p.Kind = BytesPlan
		}
		if p.Len >= 0 && elem.Size >= 0 {
			p.Size = p.Len * elem.Size
		}
		return p, nil

	case *ast.IndexExpr, *ast.IndexListExpr:
		base, args := indexParts(t)
		if id, ok := base.(*ast.Ident); ok {
			if record, generic := rs.reg.IsRecord(id.Name); record && generic {
				return &Plan{Kind: RecordPlan, Type: typ, Record: id.Name, TypeArgs: args, Size: -1}, nil
			}
		}
		return &Plan{Kind: CodecPlan, Type: typ, Size: -1}, nil

	case *ast.StarExpr:
		return nil, fmt.Errorf("%w: pointer %s", ErrUnsupportedType, typ)
	case *ast.MapType:
		return nil, fmt.Errorf("%w: map %s", ErrUnsupportedType, typ)
	case *ast.ChanType:
		return nil, fmt.Errorf("%w: chan %s", ErrUnsupportedType, typ)
	case *ast.FuncType:
		return nil, fmt.Errorf("%w: func %s", ErrUnsupportedType, typ)
	case *ast.InterfaceType:
		return nil, fmt.Errorf("%w: interface %s", ErrUnsupportedType, typ)
	case *ast.StructType:
		return nil, fmt.Errorf("%w: struct literal %s, declare an annotated record", ErrUnsupportedType, typ)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
}

// named resolves a local named type through its underlying type. Named
// primitives and arrays are encoded like their underlying type; anything
// else must implement the wire contracts itself.
func (rs *resolver) named(name string, underlying ast.Expr) *Plan {
	codec := &Plan{Kind: CodecPlan, Type: name, Size: -1}
	if rs.visiting[name] {
		return codec
	}
	rs.visiting[name] = true
	defer delete(rs.visiting, name)

	u, err := rs.resolve(underlying)
	if err != nil {
		return codec
	}

	switch u.Kind {
	case PrimitivePlan:
		return &Plan{Kind: PrimitivePlan, Type: name, Prim: u.Prim, Convert: true, Size: u.Size}
	case BytesPlan, ArrayPlan:
		p := *u
		p.Type = name
		return &p
	default:
		return codec
	}
}

func arrayLen(expr ast.Expr) int {
	lit, ok := expr.(*ast.BasicLit)
	if !ok {
		return -1
	}
	n, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil {
		return -1
	}
	return int(n)
}

func indexParts(expr ast.Expr) (ast.Expr, []string) {
	switch t := expr.(type) {
	case *ast.IndexExpr:
		return t.X, []string{types.ExprString(t.Index)}
	case *ast.IndexListExpr:
		args := make([]string, len(t.Indices))
		for i, idx := range t.Indices {
			args[i] = types.ExprString(idx)
		}
		return t.X, args
	}
	return expr, nil
}
