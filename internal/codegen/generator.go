package codegen

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/bend-n/raad-codegen/internal/analyzer"
	"github.com/bend-n/raad-codegen/internal/parser"
)

// DefaultRuntime is the import path of the runtime package generated code calls
const DefaultRuntime = "github.com/bend-n/raad-codegen/wire"

// Generator generates write and read procedures for one analyzed record
type Generator struct {
	rec     *analyzer.Record
	runtime string // package identifier of the runtime, e.g. "wire"
	id      idents
}

// idents are the identifiers of generated procedures. Type parameters of
// the record share their scope, so each one is suffixed until it is free.
type idents struct {
	w, r, p, err string
	field        string // read locals: f0, f1, ...
	elem         string // range variables and element locals: e0, e1, ...
	index        string // read loop indices: i0, i1, ...
	pad          string // blank field values: pad0, pad1, ...
}

func newIdents(params []string) idents {
	taken := make(map[string]bool, len(params))
	for _, p := range params {
		taken[p] = true
	}
	return idents{
		w:     free("w", taken, false),
		r:     free("r", taken, false),
		p:     free("p", taken, false),
		err:   free("err", taken, false),
		field: free("f", taken, true),
		elem:  free("e", taken, true),
		index: free("i", taken, true),
		pad:   free("pad", taken, true),
	}
}

// free returns base, suffixed with underscores until neither it nor, when
// numbered, base followed by digits names a taken identifier
func free(base string, taken map[string]bool, numbered bool) string {
	for clashes(base, taken, numbered) {
		base += "_"
	}
	return base
}

func clashes(base string, taken map[string]bool, numbered bool) bool {
	if taken[base] {
		return true
	}
	if !numbered {
		return false
	}
	for name := range taken {
		rest, ok := strings.CutPrefix(name, base)
		if ok && rest != "" && strings.Trim(rest, "0123456789") == "" {
			return true
		}
	}
	return false
}

// emitter accumulates indented lines of Go code
type emitter struct {
	b      strings.Builder
	indent int
	err    string
	zero   string // zero value returned by read procedures on failure
}

func (e *emitter) line(format string, args ...any) {
	e.b.WriteString(strings.Repeat("\t", e.indent))
	fmt.Fprintf(&e.b, format, args...)
	e.b.WriteByte('\n')
}

// fail closes an `if err ... {` opened by the caller
func (e *emitter) fail() {
	if e.zero == "" {
		e.line("\treturn %s", e.err)
	} else {
		e.line("\treturn %s, %s", e.zero, e.err)
	}
	e.line("}")
}

// NewGenerator creates a new code generator. runtime is the package
// identifier generated code uses to reach the runtime.
func NewGenerator(rec *analyzer.Record, runtime string) *Generator {
	if runtime == "" {
		runtime = "wire"
	}
	return &Generator{rec: rec, runtime: runtime, id: newIdents(rec.Schema.ParamNames())}
}

// Generate returns the generated code for this record (without package header/imports)
func (g *Generator) Generate() (string, error) {
	s := g.rec.Schema
	if s.Anno == nil {
		return "", fmt.Errorf("record %s has no annotation", s.Name)
	}
	if err := g.checkParams(); err != nil {
		return "", err
	}

	var out strings.Builder
	if g.rec.Fixed() {
		fmt.Fprintf(&out, "// %sSize is the encoded size of %s in bytes.\n", s.Name, s.Name)
		fmt.Fprintf(&out, "const %sSize = %d\n", s.Name, g.rec.Size)
	}

	for _, o := range Orders {
		if s.Anno.Write {
			out.WriteString("\n")
			out.WriteString(g.GenerateWrite(o))
		}
		if s.Anno.Read {
			out.WriteString("\n")
			out.WriteString(g.GenerateRead(o))
		}
	}

	return out.String(), nil
}

// checkParams rejects type parameter names that would shadow a package or
// predeclared identifier referenced by the generated procedures
func (g *Generator) checkParams() error {
	s := g.rec.Schema
	for _, name := range s.ParamNames() {
		var err error
		switch {
		case name == "io" || name == g.runtime:
			err = fmt.Errorf("type parameter %s shadows the %s package used by generated code", name, name)
		case types.Universe.Lookup(name) != nil:
			err = fmt.Errorf("type parameter %s shadows the predeclared identifier", name)
		}
		if err != nil {
			return &parser.DeclError{Pos: s.Pos, Name: s.Name, Err: err}
		}
	}
	return nil
}

// GenerateWrite generates the write procedure for one byte order
func (g *Generator) GenerateWrite(o Order) string {
	s := g.rec.Schema
	id := g.id
	e := &emitter{err: id.err}

	if s.Generic() {
		params := analyzer.InjectBounds(s.TypeParams, o.Writer(g.runtime))
		e.line("// Write%s%s writes %s to %s in %s order.", s.Name, o.Suffix, id.p, id.w, o.Name)
		e.line("func Write%s%s%s(%s io.Writer, %s %s) error {", s.Name, o.Suffix, analyzer.Clause(params), id.w, id.p, s.Instance())
	} else {
		e.line("// Write%s writes %s to %s in %s order.", o.Suffix, id.p, id.w, o.Name)
		e.line("func (%s %s) Write%s(%s io.Writer) error {", id.p, s.Name, o.Suffix, id.w)
	}

	e.indent++
	for i, f := range g.rec.Fields {
		v := id.p + "." + f.Field.Accessor
		if f.Field.Blank() {
			v = fmt.Sprintf("%s%d", id.pad, i)
			e.line("var %s %s", v, f.Plan.Type)
		}
		g.write(e, o, f.Plan, v, 0)
	}
	e.line("return nil")
	e.indent--
	e.line("}")

	return e.b.String()
}

// write emits the statements writing v, one runtime call per primitive
// or byte array, arrays element by element in index order
func (g *Generator) write(e *emitter, o Order, p *analyzer.Plan, v string, depth int) {
	if p.Kind == analyzer.ArrayPlan {
		elem := fmt.Sprintf("%s%d", g.id.elem, depth)
		e.line("for _, %s := range %s {", elem, v)
		e.indent++
		g.write(e, o, p.Elem, elem, depth+1)
		e.indent--
		e.line("}")
		return
	}

	e.line("if %s := %s; %s != nil {", g.id.err, g.writeCall(o, p, v), g.id.err)
	e.fail()
}

func (g *Generator) writeCall(o Order, p *analyzer.Plan, v string) string {
	w := g.id.w
	switch p.Kind {
	case analyzer.PrimitivePlan:
		if p.Convert {
			v = p.Prim.GoType() + "(" + v + ")"
		}
		if p.Prim.Ordered() {
			return fmt.Sprintf("%s.Write%s(%s, %s, %s)", g.runtime, p.Prim.Name(), w, o.Expr(g.runtime), v)
		}
		return fmt.Sprintf("%s.Write%s(%s, %s)", g.runtime, p.Prim.Name(), w, v)
	case analyzer.BytesPlan:
		return fmt.Sprintf("%s.WriteBytes(%s, %s[:])", g.runtime, w, v)
	case analyzer.RecordPlan:
		return fmt.Sprintf("Write%s%s[%s](%s, %s)", p.Record, o.Suffix, strings.Join(p.TypeArgs, ", "), w, v)
	default:
		// Type parameters and codec types through the contract
		return fmt.Sprintf("%s.Write%s(%s, %s)", g.runtime, o.Suffix, w, v)
	}
}

// GenerateRead generates the read procedure for one byte order
func (g *Generator) GenerateRead(o Order) string {
	s := g.rec.Schema
	id := g.id
	e := &emitter{err: id.err, zero: s.Instance() + "{}"}

	if s.Generic() {
		params := analyzer.InjectBounds(s.TypeParams, o.Reader(g.runtime))
		e.line("// Read%s%s reads a %s from %s in %s order.", s.Name, o.Suffix, s.Name, id.r, o.Name)
		e.line("func Read%s%s%s(%s io.Reader) (%s, error) {", s.Name, o.Suffix, analyzer.Clause(params), id.r, s.Instance())
	} else {
		e.line("// Read%s reads a new %s from %s in %s order. The receiver is not used.", o.Suffix, s.Name, id.r, o.Name)
		e.line("func (%s) Read%s(%s io.Reader) (%s, error) {", s.Name, o.Suffix, id.r, s.Name)
	}

	e.indent++
	values := make([]string, len(g.rec.Fields))
	for i, f := range g.rec.Fields {
		v := fmt.Sprintf("%s%d", id.field, i)
		g.read(e, o, f.Plan, v, true, 0)
		values[i] = convert(f.Plan, v)

		if want := f.Field.Markers.EqualsTo; want != "" {
			e.line("if %s := %s.Check(%q, %s, %s); %s != nil {", id.err, g.runtime, f.Field.Name(), values[i], want, id.err)
			e.fail()
		}
	}
	e.line("return %s, nil", g.construct(values))
	e.indent--
	e.line("}")

	return e.b.String()
}

// read emits the statements decoding one value into dst. declare makes
// dst a new local; otherwise dst is an addressable array element.
func (g *Generator) read(e *emitter, o Order, p *analyzer.Plan, dst string, declare bool, depth int) {
	switch p.Kind {
	case analyzer.BytesPlan:
		if declare {
			e.line("var %s %s", dst, p.Type)
		}
		e.line("if %s := %s.ReadBytes(%s, %s[:]); %s != nil {", g.id.err, g.runtime, g.id.r, dst, g.id.err)
		e.fail()

	case analyzer.ArrayPlan:
		if declare {
			e.line("var %s %s", dst, p.Type)
		}
		idx := fmt.Sprintf("%s%d", g.id.index, depth)
		e.line("for %s := range %s {", idx, dst)
		e.indent++
		g.read(e, o, p.Elem, dst+"["+idx+"]", false, depth+1)
		e.indent--
		e.line("}")

	default:
		v := dst
		if !declare {
			v = fmt.Sprintf("%s%d", g.id.elem, depth)
		}
		e.line("%s, %s := %s", v, g.id.err, g.readCall(o, p))
		e.line("if %s != nil {", g.id.err)
		e.fail()
		if !declare {
			e.line("%s = %s", dst, convert(p, v))
		}
	}
}

func (g *Generator) readCall(o Order, p *analyzer.Plan) string {
	r := g.id.r
	switch p.Kind {
	case analyzer.PrimitivePlan:
		if p.Prim.Ordered() {
			return fmt.Sprintf("%s.Read%s(%s, %s)", g.runtime, p.Prim.Name(), r, o.Expr(g.runtime))
		}
		return fmt.Sprintf("%s.Read%s(%s)", g.runtime, p.Prim.Name(), r)
	case analyzer.RecordPlan:
		return fmt.Sprintf("Read%s%s[%s](%s)", p.Record, o.Suffix, strings.Join(p.TypeArgs, ", "), r)
	default:
		return fmt.Sprintf("%s.Read%s[%s](%s)", g.runtime, o.Suffix, p.Type, r)
	}
}

// convert wraps a decoded primitive in its named type
func convert(p *analyzer.Plan, v string) string {
	if p.Kind == analyzer.PrimitivePlan && p.Convert {
		return p.Type + "(" + v + ")"
	}
	return v
}

// construct builds the record literal: by position when any field is
// positional, by label otherwise
func (g *Generator) construct(values []string) string {
	s := g.rec.Schema
	if s.HasPositional() {
		return s.Instance() + "{" + strings.Join(values, ", ") + "}"
	}

	parts := make([]string, len(values))
	for i, f := range g.rec.Fields {
		parts[i] = f.Field.Label + ": " + values[i]
	}
	return s.Instance() + "{" + strings.Join(parts, ", ") + "}"
}
