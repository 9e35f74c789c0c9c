package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFile(t *testing.T) {
	src := `//go:build !tiny

package rec

import (
	"fmt"
	"time"
)

// @raad
type Pair[T any, U fmt.Stringer] struct {
	Yar T
	Var U
}

// not a record, time is unused by generated code
type Clock struct {
	At time.Time
}
`
	res := analyze(t, src)
	out, err := RenderFile(res, Options{Filename: "rec_raad.go", Header: []string{"source: rec.go"}})
	require.NoError(t, err)

	code := string(out)
	assert.True(t, strings.HasPrefix(code, "// Code generated by raadgen; DO NOT EDIT.\n// source: rec.go\n"), code)
	assert.Contains(t, code, "//go:build !tiny\n")
	assert.Contains(t, code, "package rec\n")
	assert.Contains(t, code, `"github.com/bend-n/raad-codegen/wire"`)
	assert.Contains(t, code, `"fmt"`)
	assert.Contains(t, code, `"io"`)
	assert.NotContains(t, code, `"time"`, "unused imports are removed")

	_, err = parser.ParseFile(token.NewFileSet(), "rec_raad.go", out, parser.ParseComments)
	require.NoError(t, err)
}

func TestRenderFileDeterministic(t *testing.T) {
	res := analyze(t, headerSrc)
	first, err := RenderFile(res, Options{Filename: "rec_raad.go"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := RenderFile(analyze(t, headerSrc), Options{Filename: "rec_raad.go"})
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestRenderFileRuntime(t *testing.T) {
	res := analyze(t, headerSrc)
	out, err := RenderFile(res, Options{Filename: "rec_raad.go", Runtime: "example.com/codec/rt"})
	require.NoError(t, err)

	code := string(out)
	assert.Contains(t, code, `"example.com/codec/rt"`)
	assert.Contains(t, code, "rt.WriteUint32(w, rt.LE, p.Width)")
	assert.NotContains(t, code, "wire.")
}

func TestRenderFileVersionedRuntime(t *testing.T) {
	res := analyze(t, headerSrc)
	out, err := RenderFile(res, Options{Filename: "rec_raad.go", Runtime: "example.com/wire/v2"})
	require.NoError(t, err)

	code := string(out)
	assert.Contains(t, code, `"example.com/wire/v2"`)
	assert.Contains(t, code, "wire.WriteUint32(w, wire.LE, p.Width)")
	assert.NotContains(t, code, "v2.")
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"github.com/bend-n/raad-codegen/wire", "wire"},
		{"example.com/wire/v2", "wire"},
		{"example.com/wire/v10", "wire"},
		{"gopkg.in/wire.v1", "wire"},
		{"example.com/vx", "vx"},
		{"wire", "wire"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PackageName(tt.path), tt.path)
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		source, suffix, want string
	}{
		{"header.go", "", "header_raad.go"},
		{"dir/header.go", "", "dir/header_raad.go"},
		{"header_test.go", "", "header_raad_test.go"},
		{"header.go", "_codec", "header_codec.go"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.source, tt.suffix); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.source, tt.suffix, got, tt.want)
		}
	}
}
