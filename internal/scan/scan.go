package scan

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/vk/enumdex/internal/config"
	"github.com/vk/enumdex/internal/ctxlog"
	"github.com/vk/enumdex/internal/fsutil"
	"github.com/vk/enumdex/internal/model"
	"github.com/vk/enumdex/internal/registry"
)

// ErrStructural marks declarations that cannot be decomposed into a finite
// domain. It always surfaces at generation time, never at runtime.
var ErrStructural = errors.New("unsupported domain structure")

// integerKinds are the underlying types accepted for iota enums.
var integerKinds = map[string]struct{}{
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
}

// Scan parses the package directory named by cfg, recognizes its domain
// type declarations, and returns the shapes selected for generation. Every
// selected type name plus cfg.External is added to reg before fields are
// validated, so mutually referencing shapes resolve within one run.
func Scan(ctx context.Context, cfg *config.Model, reg *registry.Registry) (*model.Package, error) {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.ListGoSources(cfg.Dir, cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", cfg.Dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no Go sources in %s", cfg.Dir)
	}

	s := &scanner{fset: token.NewFileSet(), reg: reg}
	for _, path := range paths {
		file, err := parser.ParseFile(s.fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if s.pkgName == "" {
			s.pkgName = file.Name.Name
		} else if s.pkgName != file.Name.Name {
			return nil, fmt.Errorf("%s declares package %s, expected %s", path, file.Name.Name, s.pkgName)
		}
		s.collect(file)
	}
	logger.Debug("Sources collected.",
		"package", s.pkgName, "files", len(paths), "types", len(s.typeOrder))

	shapes, err := s.recognize()
	if err != nil {
		return nil, err
	}
	selected, err := selectShapes(shapes, cfg)
	if err != nil {
		return nil, err
	}

	for _, shape := range selected {
		reg.Add(shape.Name)
	}
	for _, name := range cfg.External {
		reg.Add(name)
	}
	for _, shape := range selected {
		if err := s.resolveFields(shape); err != nil {
			return nil, err
		}
	}

	logger.Debug("Shapes recognized.", "selected", len(selected))
	return &model.Package{Name: s.pkgName, Shapes: selected}, nil
}

// scanner accumulates declarations across all files of the package.
type scanner struct {
	fset    *token.FileSet
	reg     *registry.Registry
	pkgName string

	typeOrder  []string
	typeSpecs  map[string]*ast.TypeSpec
	constDecls []*ast.GenDecl
	// methods maps receiver type name to the set of its method names,
	// counting value and pointer receivers alike.
	methods map[string]map[string]bool
	// fieldASTs retains the struct type of each candidate variant for the
	// field resolution pass.
	structTypes map[string]*ast.StructType
}

func (s *scanner) collect(file *ast.File) {
	if s.typeSpecs == nil {
		s.typeSpecs = make(map[string]*ast.TypeSpec)
		s.methods = make(map[string]map[string]bool)
		s.structTypes = make(map[string]*ast.StructType)
	}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			switch d.Tok {
			case token.TYPE:
				for _, spec := range d.Specs {
					ts := spec.(*ast.TypeSpec)
					name := ts.Name.Name
					s.typeOrder = append(s.typeOrder, name)
					s.typeSpecs[name] = ts
					if st, ok := ts.Type.(*ast.StructType); ok {
						s.structTypes[name] = st
					}
				}
			case token.CONST:
				s.constDecls = append(s.constDecls, d)
			}
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) != 1 {
				continue
			}
			recv := receiverName(d.Recv.List[0].Type)
			if recv == "" {
				continue
			}
			if s.methods[recv] == nil {
				s.methods[recv] = make(map[string]bool)
			}
			s.methods[recv][d.Name.Name] = true
		}
	}
}

func receiverName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// recognize walks declared types in order and classifies each as an iota
// enum, a sum type, or neither. Field validation is deferred until the
// selected set is known.
func (s *scanner) recognize() ([]*model.Shape, error) {
	var shapes []*model.Shape
	for _, name := range s.typeOrder {
		ts := s.typeSpecs[name]
		switch t := ts.Type.(type) {
		case *ast.Ident:
			if _, ok := integerKinds[t.Name]; !ok {
				continue
			}
			shape, err := s.iotaShape(name)
			if err != nil {
				return nil, err
			}
			if shape != nil {
				shapes = append(shapes, shape)
			}
		case *ast.InterfaceType:
			if !isMarkerInterface(t, name) {
				continue
			}
			shapes = append(shapes, s.sumShape(name))
		}
	}
	return shapes, nil
}

// isMarkerInterface reports whether the interface seals a sum type: exactly
// one niladic method named is<Name>, nothing embedded.
func isMarkerInterface(t *ast.InterfaceType, typeName string) bool {
	if t.Methods == nil || len(t.Methods.List) != 1 {
		return false
	}
	m := t.Methods.List[0]
	ft, ok := m.Type.(*ast.FuncType)
	if !ok || len(m.Names) != 1 {
		return false
	}
	if m.Names[0].Name != "is"+typeName {
		return false
	}
	if ft.Params != nil && len(ft.Params.List) > 0 {
		return false
	}
	return ft.Results == nil || len(ft.Results.List) == 0
}

// iotaShape finds the const run typed as name. The run must be a plain iota
// ladder: first constant `= iota`, one name per spec, no blanks and no
// explicit values, so the identity encoding is dense.
func (s *scanner) iotaShape(name string) (*model.Shape, error) {
	for _, decl := range s.constDecls {
		if len(decl.Specs) == 0 {
			continue
		}
		first, ok := decl.Specs[0].(*ast.ValueSpec)
		if !ok || first.Type == nil {
			continue
		}
		id, ok := first.Type.(*ast.Ident)
		if !ok || id.Name != name {
			continue
		}

		shape := &model.Shape{Name: name, Kind: model.KindIota}
		for i, spec := range decl.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Names) != 1 {
				return nil, s.errorf(spec.Pos(), "const run for %s must declare one name per line", name)
			}
			constName := vs.Names[0].Name
			if constName == "_" {
				return nil, s.errorf(vs.Pos(), "const run for %s skips a value with _", name)
			}
			if i == 0 {
				if len(vs.Values) != 1 || !isIota(vs.Values[0]) {
					return nil, s.errorf(vs.Pos(), "const run for %s must start with iota", name)
				}
			} else if vs.Type != nil || len(vs.Values) != 0 {
				return nil, s.errorf(vs.Pos(), "const run for %s must be a plain iota ladder", name)
			}
			shape.Variants = append(shape.Variants, model.Variant{Name: constName})
		}
		return shape, nil
	}
	return nil, nil
}

func isIota(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == "iota"
}

// sumShape gathers the variant structs of a sealed interface in declaration
// order. Fields stay unresolved until resolveFields.
func (s *scanner) sumShape(name string) *model.Shape {
	shape := &model.Shape{Name: name, Kind: model.KindSum}
	marker := "is" + name
	for _, typeName := range s.typeOrder {
		if _, ok := s.structTypes[typeName]; !ok {
			continue
		}
		if s.methods[typeName][marker] {
			shape.Variants = append(shape.Variants, model.Variant{Name: typeName})
		}
	}
	return shape
}

// resolveFields validates and models every field of a sum shape's variants.
func (s *scanner) resolveFields(shape *model.Shape) error {
	if shape.Kind != model.KindSum {
		return nil
	}
	for vi := range shape.Variants {
		variant := &shape.Variants[vi]
		st := s.structTypes[variant.Name]
		if st.Fields == nil {
			continue
		}
		for _, field := range st.Fields.List {
			if len(field.Names) == 0 {
				return s.errorf(field.Pos(), "variant %s of %s embeds a type; fields must be named", variant.Name, shape.Name)
			}
			dom, err := s.fieldDomain(field.Type)
			if err != nil {
				return err
			}
			for _, fieldName := range field.Names {
				variant.Fields = append(variant.Fields, model.Field{
					Name: fieldName.Name,
					Dom:  dom,
				})
			}
		}
	}
	return nil
}

// fieldDomain maps a field type expression to its domain description.
func (s *scanner) fieldDomain(expr ast.Expr) (model.FieldDomain, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "bool":
			return model.FieldDomain{Kind: model.FieldBool}, nil
		case "uint8", "byte":
			return model.FieldDomain{Kind: model.FieldByte}, nil
		}
		if s.reg.Has(t.Name) {
			return model.FieldDomain{Kind: model.FieldNamed, Named: t.Name}, nil
		}
		return model.FieldDomain{}, s.errorf(t.Pos(), "type %s has no known domain; generate it in this run or declare it external", t.Name)
	case *ast.ArrayType:
		if t.Len == nil {
			return model.FieldDomain{}, s.errorf(t.Pos(), "slice fields have no fixed cardinality; use a fixed-size array")
		}
		lit, ok := t.Len.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return model.FieldDomain{}, s.errorf(t.Pos(), "array length must be an integer literal")
		}
		n, err := strconv.Atoi(lit.Value)
		if err != nil || n < 0 {
			return model.FieldDomain{}, s.errorf(t.Pos(), "invalid array length %s", lit.Value)
		}
		elem, err := s.fieldDomain(t.Elt)
		if err != nil {
			return model.FieldDomain{}, err
		}
		if elem.Kind == model.FieldArray {
			return model.FieldDomain{}, s.errorf(t.Pos(), "nested arrays are not supported; name the inner array type")
		}
		return model.FieldDomain{Kind: model.FieldArray, Elem: &elem, ArrayLen: n}, nil
	}
	return model.FieldDomain{}, s.errorf(expr.Pos(), "field type is not a finite domain")
}

func (s *scanner) errorf(pos token.Pos, format string, args ...any) error {
	prefix := []any{s.fset.Position(pos), ErrStructural}
	return fmt.Errorf("%s: %w: "+format, append(prefix, args...)...)
}

// selectShapes applies the manifest's domain requests: either an explicit
// list, each of which must resolve, or every recognized shape.
func selectShapes(shapes []*model.Shape, cfg *config.Model) ([]*model.Shape, error) {
	byName := make(map[string]*model.Shape, len(shapes))
	for _, shape := range shapes {
		byName[shape.Name] = shape
	}

	var selected []*model.Shape
	if len(cfg.Domains) == 0 {
		selected = shapes
	} else {
		for _, req := range cfg.Domains {
			shape, ok := byName[req.Type]
			if !ok {
				return nil, fmt.Errorf("requested type %s is not a recognizable domain type in %s", req.Type, cfg.Dir)
			}
			if req.Descriptor != "" {
				shape.Descriptor = req.Descriptor
			}
			selected = append(selected, shape)
		}
	}
	for _, shape := range selected {
		if shape.Descriptor == "" {
			shape.Descriptor = shape.Name + "Domain"
		}
	}
	return selected, nil
}
