package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bend-n/raad-codegen/internal/parser"
)

func analyzeSource(t *testing.T, src string) *Result {
	t.Helper()
	file, err := parser.ParseSource("rec.go", []byte(src))
	require.NoError(t, err)
	res, err := Analyze(file)
	require.NoError(t, err)
	return res
}

func analyzeError(t *testing.T, src string) error {
	t.Helper()
	file, err := parser.ParseSource("rec.go", []byte(src))
	require.NoError(t, err)
	_, err = Analyze(file)
	require.Error(t, err)
	return err
}

func TestAnalyzeHeader(t *testing.T) {
	res := analyzeSource(t, `package rec

// @raad
type Header struct {
	Magic      [4]byte `+"`raad:\"equals=PNGMagic\"`"+`
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}
`)
	require.Len(t, res.Records, 1)
	rec := res.Records[0]

	assert.True(t, rec.Fixed())
	assert.Equal(t, 14, rec.Size)
	require.Len(t, rec.Fields, 5)

	magic := rec.Fields[0].Plan
	assert.Equal(t, BytesPlan, magic.Kind)
	assert.Equal(t, 4, magic.Len)
	assert.Equal(t, "PNGMagic", rec.Fields[0].Field.Markers.EqualsTo)

	width := rec.Fields[1].Plan
	assert.Equal(t, PrimitivePlan, width.Kind)
	assert.Equal(t, Uint32, width.Prim)
	assert.False(t, width.Convert)

	assert.Equal(t, Uint8, rec.Fields[3].Plan.Prim)
	assert.Empty(t, res.Warnings)
}

func TestAnalyzeNamedTypes(t *testing.T) {
	res := analyzeSource(t, `package rec

import "time"

type PageID uint64
type Slot PageID
type Digest [8]byte
type Label string

// @raad
type Page struct {
	ID     PageID
	Prev   Slot
	Sum    Digest
	Name   Label
	Stamp  time.Duration
	Flags  [2]bool
}
`)
	rec := res.Records[0]
	plans := make(map[string]*Plan)
	for _, f := range rec.Fields {
		plans[f.Field.Name()] = f.Plan
	}

	assert.Equal(t, PrimitivePlan, plans["ID"].Kind)
	assert.Equal(t, Uint64, plans["ID"].Prim)
	assert.True(t, plans["ID"].Convert)
	assert.Equal(t, "PageID", plans["ID"].Type)

	// named over named
	assert.Equal(t, Uint64, plans["Prev"].Prim)
	assert.Equal(t, "Slot", plans["Prev"].Type)

	assert.Equal(t, BytesPlan, plans["Sum"].Kind)
	assert.Equal(t, "Digest", plans["Sum"].Type)
	assert.Equal(t, 8, plans["Sum"].Size)

	// string has no layout, so Label must bring its own codec
	assert.Equal(t, CodecPlan, plans["Name"].Kind)
	assert.Equal(t, CodecPlan, plans["Stamp"].Kind)
	assert.Equal(t, "time.Duration", plans["Stamp"].Type)

	assert.Equal(t, ArrayPlan, plans["Flags"].Kind)
	assert.Equal(t, Bool, plans["Flags"].Elem.Prim)
	assert.Equal(t, 2, plans["Flags"].Size)

	assert.False(t, rec.Fixed())
}

func TestAnalyzeGeneric(t *testing.T) {
	res := analyzeSource(t, `package rec

import "fmt"

// @raad
type Pair[T any, U fmt.Stringer] struct {
	Yar T
	Var U
}

// @raad
type Wrap[T any] struct {
	Inner Pair[T, Level]
	Tag   [2]T
}

type Level uint8
`)
	require.Len(t, res.Records, 2)

	pair := res.Records[0]
	assert.Equal(t, -1, pair.Size)
	assert.Equal(t, ParamPlan, pair.Fields[0].Plan.Kind)
	assert.Equal(t, ParamPlan, pair.Fields[1].Plan.Kind)

	wrap := res.Records[1]
	inner := wrap.Fields[0].Plan
	assert.Equal(t, RecordPlan, inner.Kind)
	assert.Equal(t, "Pair", inner.Record)
	assert.Equal(t, []string{"T", "Level"}, inner.TypeArgs)

	tag := wrap.Fields[1].Plan
	assert.Equal(t, ArrayPlan, tag.Kind)
	assert.Equal(t, ParamPlan, tag.Elem.Kind)
}

func TestAnalyzeNestedSize(t *testing.T) {
	// Outer refers to a record declared after it
	res := analyzeSource(t, `package rec

// @raad
type Outer struct {
	Points [3]Point
	N      uint16
}

// @raad
type Point struct {
	X, Y int32
}
`)
	outer := res.Records[0]
	assert.Equal(t, 3*8+2, outer.Size)
	assert.Equal(t, CodecPlan, outer.Fields[0].Plan.Elem.Kind)
	assert.Equal(t, "Point", outer.Fields[0].Plan.Elem.Record)
	assert.Equal(t, 8, res.Records[1].Size)
}

func TestAnalyzePositional(t *testing.T) {
	res := analyzeSource(t, `package rec

type Lat int32
type Lon int32

// @raad
type Coord struct {
	Lat
	Lon
}

// @raad
type Entry struct {
	Kind   uint8
	_      [3]byte
	Offset uint32
}
`)
	coord := res.Records[0]
	assert.Equal(t, 8, coord.Size)
	assert.Equal(t, "Lat", coord.Fields[0].Field.Accessor)
	assert.True(t, coord.Fields[0].Plan.Convert)

	entry := res.Records[1]
	assert.Equal(t, 8, entry.Size)
	assert.True(t, entry.Fields[1].Field.Blank())
	assert.Equal(t, BytesPlan, entry.Fields[1].Plan.Kind)
}

func TestAnalyzeBareEqualsWarning(t *testing.T) {
	res := analyzeSource(t, `package rec

// @raad
type Hdr struct {
	Version uint8 `+"`raad:\"equals\"`"+`
}
`)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Hdr.Version")
	assert.Contains(t, res.Warnings[0], "not enforced")
}

func TestAnalyzeUnsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		want string
	}{
		{"int", "int", "platform dependent"},
		{"string", "string", "no fixed size"},
		{"slice", "[]byte", "slice"},
		{"pointer", "*uint32", "pointer"},
		{"map", "map[uint8]uint8", "map"},
		{"chan", "chan uint8", "chan"},
		{"func", "func()", "func"},
		{"interface", "interface{ M() }", "interface"},
		{"struct", "struct{ A uint8 }", "struct literal"},
		{"nested", "[2][]uint8", "slice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analyzeError(t, "package rec\n\n// @raad\ntype R struct {\n\tF "+tt.typ+"\n}\n")
			assert.True(t, errors.Is(err, ErrUnsupportedType), "error %v is not ErrUnsupportedType", err)
			assert.Contains(t, err.Error(), tt.want)
			assert.True(t, strings.HasPrefix(err.Error(), "rec.go:5:2: R.F:"), "error = %v", err)
		})
	}
}

func TestAnalyzeConstLengthArray(t *testing.T) {
	res := analyzeSource(t, `package rec

const N = 3

// @raad
type Samples struct {
	Count  uint8
	Values [N]uint16
	Raw    [N]byte
}
`)
	require.Len(t, res.Records, 1)
	rec := res.Records[0]

	values := rec.Fields[1].Plan
	assert.Equal(t, ArrayPlan, values.Kind)
	assert.Equal(t, -1, values.Len)
	assert.Equal(t, Uint16, values.Elem.Prim)
	assert.Equal(t, -1, values.Size)

	raw := rec.Fields[2].Plan
	assert.Equal(t, BytesPlan, raw.Kind)
	assert.Equal(t, "[N]byte", raw.Type)

	assert.False(t, rec.Fixed(), "size depends on N")
}

func TestAnalyzeEqualsNeedsComparable(t *testing.T) {
	tests := []struct {
		name string
		typ  string
	}{
		{"param", "T"},
		{"param array", "[2]T"},
		{"generic record", "Box[T]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := analyzeError(t, "package rec\n\nvar Want uint8\n\n// @raad\ntype Box[T any] struct {\n\tV T\n}\n\n// @raad\ntype R[T any] struct {\n\tF "+tt.typ+" `raad:\"equals=Want\"`\n}\n")
			assert.True(t, errors.Is(err, parser.ErrBadMarker), "error %v is not ErrBadMarker", err)
			assert.True(t, strings.HasPrefix(err.Error(), "rec.go:12:2: R.F:"), "error = %v", err)
		})
	}

	// nothing is checked when the record is never read
	analyzeSource(t, "package rec\n\nvar Want uint8\n\n// @raad codec=write\ntype W[T any] struct {\n\tF T `raad:\"equals=Want\"`\n}\n")
}

func TestAnalyzeCollectsErrors(t *testing.T) {
	err := analyzeError(t, `package rec

// @raad
type A struct {
	X int
	Y string
}

// @raad
type B struct {
	Z *uint8
}
`)
	msg := err.Error()
	assert.Contains(t, msg, "A.X")
	assert.Contains(t, msg, "A.Y")
	assert.Contains(t, msg, "B.Z")
}

func TestAnalyzeMissingDirection(t *testing.T) {
	err := analyzeError(t, `package rec

// @raad codec=write
type Inner struct {
	A uint8
}

// @raad
type Outer struct {
	In Inner
}
`)
	assert.True(t, errors.Is(err, ErrMissingDirection))
	assert.Contains(t, err.Error(), "Inner has no read procedure")
}

func TestAnalyzeGenericWithoutArgs(t *testing.T) {
	err := analyzeError(t, `package rec

// @raad
type Box[T any] struct {
	V T
}

// @raad
type Bad struct {
	B Box
}
`)
	assert.Contains(t, err.Error(), "without type arguments")
}

func TestAnalyzeNil(t *testing.T) {
	_, err := Analyze(nil)
	assert.Error(t, err)
}

func TestPlanKindString(t *testing.T) {
	assert.Equal(t, "bytes", BytesPlan.String())
	assert.Equal(t, "codec", CodecPlan.String())
	assert.Equal(t, "unknown", PlanKind(42).String())
}
