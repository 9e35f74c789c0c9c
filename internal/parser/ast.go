package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// ParseFile parses a Go source file and extracts types with @raad annotations
func ParseFile(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseSource(filename, src)
}

// ParseSource is ParseFile for source already in memory.
//
// Every problem found in the file is reported, combined into one error; the
// returned File is nil whenever err is not.
func ParseSource(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	f := &File{
		Filename:        filename,
		Package:         file.Name.Name,
		BuildConstraint: buildConstraint(file),
		Imports:         extractImports(file),
	}

	var errs error
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)

			// Grouped declarations carry the doc on the type spec
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}

			anno, err := extractAnnotation(doc)
			if err != nil {
				errs = multierr.Append(errs, declError(fset, typeSpec, err))
				continue
			}
			if anno == nil {
				f.Defs = append(f.Defs, TypeDef{
					Name:       typeSpec.Name.Name,
					Underlying: typeSpec.Type,
					Generic:    typeSpec.TypeParams != nil,
				})
				continue
			}

			schema, err := extractSchema(fset, typeSpec, anno)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			f.Schemas = append(f.Schemas, schema)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return f, nil
}

func declError(fset *token.FileSet, spec *ast.TypeSpec, err error) error {
	return &DeclError{
		Pos:  fset.Position(spec.Pos()),
		Name: spec.Name.Name,
		Err:  err,
	}
}

// extractSchema builds the Schema of one annotated type, failing with
// ErrUnsupportedShape for anything but a struct
func extractSchema(fset *token.FileSet, spec *ast.TypeSpec, anno *TypeAnnotation) (*Schema, error) {
	if spec.Assign.IsValid() {
		return nil, declError(fset, spec, fmt.Errorf("%w (alias declaration)", ErrUnsupportedShape))
	}
	structType, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, declError(fset, spec, fmt.Errorf("%w (got %s)", ErrUnsupportedShape, shapeName(spec.Type)))
	}

	s := &Schema{
		Name: spec.Name.Name,
		Anno: anno,
		Pos:  fset.Position(spec.Pos()),
	}
	s.TypeParams, s.GenericClause = extractTypeParams(spec.TypeParams)

	fields, err := extractFields(fset, structType)
	if err != nil {
		return nil, declError(fset, spec, err)
	}
	s.Fields = Classify(fields)

	return s, nil
}

func extractAnnotation(doc *ast.CommentGroup) (*TypeAnnotation, error) {
	if doc == nil {
		return nil, nil
	}

	// Extract comment text lines
	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	anno, found, err := FindAnnotation(lines)
	if !found {
		return nil, nil
	}
	return anno, err
}

// extractTypeParams flattens grouped parameters ("K, V any") into one entry
// per name and rebuilds the original clause text
func extractTypeParams(list *ast.FieldList) ([]TypeParam, string) {
	if list == nil || len(list.List) == 0 {
		return nil, ""
	}

	var params []TypeParam
	groups := make([]string, 0, len(list.List))
	for _, field := range list.List {
		constraint := types.ExprString(field.Type)
		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
			params = append(params, TypeParam{Name: name.Name, Constraint: constraint})
		}
		groups = append(groups, strings.Join(names, ", ")+" "+constraint)
	}

	return params, "[" + strings.Join(groups, ", ") + "]"
}

// extractFields returns the struct fields in declaration order. Labels are
// left as declared (empty for embedded fields); Classify decides the kind.
func extractFields(fset *token.FileSet, structType *ast.StructType) ([]Field, error) {
	var fields []Field
	var errs error
	index := 0

	add := func(label string, field *ast.Field, pos token.Pos) {
		markers, err := fieldMarkers(field)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: field %s: %w", fset.Position(pos), fieldName(label, field), err))
		}
		fields = append(fields, Field{
			Label:   label,
			Index:   uint16(index),
			Type:    types.ExprString(field.Type),
			Expr:    field.Type,
			Markers: markers,
			Pos:     fset.Position(pos),
		})
		index++
	}

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			add("", field, field.Pos())
			continue
		}
		for _, name := range field.Names {
			add(name.Name, field, name.Pos())
		}
	}

	if index > 1<<16 {
		errs = multierr.Append(errs, fmt.Errorf("too many fields: %d", index))
	}
	return fields, errs
}

func fieldMarkers(field *ast.Field) (Markers, error) {
	if field.Tag == nil {
		return Markers{}, nil
	}
	tag, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return Markers{}, fmt.Errorf("%w: %v", ErrBadMarker, err)
	}
	return ParseMarkers(tag)
}

func fieldName(label string, field *ast.Field) string {
	if label != "" {
		return label
	}
	return embeddedName(field.Type)
}

// embeddedName returns the implicit field name of an embedded type:
// Foo, *Foo, pkg.Foo and Foo[T] are all named Foo
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	case *ast.ParenExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}

func shapeName(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.InterfaceType:
		return "interface"
	case *ast.FuncType:
		return "func"
	case *ast.MapType:
		return "map"
	case *ast.ChanType:
		return "chan"
	case *ast.ArrayType:
		return "array or slice"
	case *ast.StarExpr:
		return "pointer"
	default:
		return "named type " + types.ExprString(expr)
	}
}

func extractImports(file *ast.File) []Import {
	imports := make([]Import, 0, len(file.Imports))
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imp := Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}
		imports = append(imports, imp)
	}
	return imports
}

// buildConstraint returns the //go:build line preceding the package clause
func buildConstraint(file *ast.File) string {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, c := range group.List {
			if strings.HasPrefix(c.Text, "//go:build ") {
				return c.Text
			}
		}
	}
	return ""
}
