package codegen

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/bend-n/raad-codegen/internal/analyzer"
)

// Options controls file rendering
type Options struct {
	Runtime  string   // import path of the runtime package; DefaultRuntime if empty
	Header   []string // comment lines placed under the generated-code notice
	Filename string   // output file name, used by the formatter
}

// RenderFile renders the generated file for an analyzed source file: notice,
// build constraint, package clause, imports and every record's procedures,
// formatted with unused imports removed.
func RenderFile(res *analyzer.Result, opts Options) ([]byte, error) {
	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}
	runtimeName := PackageName(opts.Runtime)

	info := &fileInfo{
		Header:          opts.Header,
		BuildConstraint: res.File.BuildConstraint,
		Package:         res.File.Package,
		Imports:         fileImports(res, opts.Runtime, runtimeName),
	}
	for _, rec := range res.Records {
		code, err := NewGenerator(rec, runtimeName).Generate()
		if err != nil {
			return nil, err
		}
		info.Bodies = append(info.Bodies, code)
	}

	var buf bytes.Buffer
	if err := generateTemplate(info, &buf); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	out, err := imports.Process(opts.Filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", opts.Filename, err, buf.String())
	}
	return out, nil
}

// fileImports returns the source file's imports followed by io and the
// runtime, skipping duplicates and blank imports
func fileImports(res *analyzer.Result, runtime, runtimeName string) []importInfo {
	seen := make(map[string]bool)
	var out []importInfo
	add := func(name, p string) {
		if seen[p] || name == "_" {
			return
		}
		seen[p] = true
		out = append(out, importInfo{Name: name, Path: p})
	}

	add("", "io")
	for _, imp := range res.File.Imports {
		add(imp.Name, imp.Path)
	}
	if runtimeName == path.Base(runtime) {
		runtimeName = ""
	}
	add(runtimeName, runtime)
	return out
}

// PackageName returns the identifier generated code uses for the package at
// importPath: the last element, skipping a major version suffix.
// example.com/wire/v2 → wire, gopkg.in/wire.v1 → wire
func PackageName(importPath string) string {
	name := path.Base(importPath)
	if isMajorVersion(name) && path.Dir(importPath) != "." {
		name = path.Base(path.Dir(importPath))
	}
	if i := strings.LastIndex(name, ".v"); i > 0 && isMajorVersion(name[i+1:]) {
		name = name[:i]
	}
	return name
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	return strings.Trim(s[1:], "0123456789") == ""
}

// OutputName returns the generated file name for a source file:
// rec.go → rec_raad.go, rec_test.go → rec_raad_test.go
func OutputName(source, suffix string) string {
	if suffix == "" {
		suffix = "_raad"
	}
	base := strings.TrimSuffix(source, ".go")
	if strings.HasSuffix(base, "_test") {
		return strings.TrimSuffix(base, "_test") + suffix + "_test.go"
	}
	return base + suffix + ".go"
}
