// Package emit turns recognized shapes into Go source: one Len constant and
// one Domain implementation per shape, encoded with variant base offsets and
// mixed-radix field weighting where the last-declared field varies fastest.
//
// The file is assembled as a dst syntax tree and printed with the decorator,
// so the output is gofmt-clean by construction.
package emit

import (
	"bytes"
	"context"
	"fmt"
	"go/token"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"github.com/vk/enumdex/internal/ctxlog"
	"github.com/vk/enumdex/internal/model"
)

const enumdexPath = "github.com/vk/enumdex"

// Source renders the generated file for a scanned package.
func Source(ctx context.Context, pkg *model.Package) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	e := &emitter{desc: make(map[string]string, len(pkg.Shapes))}
	for _, shape := range pkg.Shapes {
		e.desc[shape.Name] = shape.Descriptor
	}

	file := &dst.File{Name: ident(pkg.Name)}
	file.Decs.Start.Append("// Code generated by enumgen. DO NOT EDIT.", "\n")
	file.Decls = append(file.Decls, importDecl())

	for _, shape := range pkg.Shapes {
		decls, err := e.shapeDecls(shape)
		if err != nil {
			return nil, err
		}
		file.Decls = append(file.Decls, decls...)
		logger.Debug("Shape emitted.", "type", shape.Name, "variants", len(shape.Variants))
	}

	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, file); err != nil {
		return nil, fmt.Errorf("failed to print generated file: %w", err)
	}
	return buf.Bytes(), nil
}

type emitter struct {
	// desc maps type names to descriptor variable names for every shape in
	// the run; externals fall back to the <Name>Domain convention.
	desc map[string]string
}

func (e *emitter) descFor(typeName string) string {
	if d, ok := e.desc[typeName]; ok {
		return d
	}
	return typeName + "Domain"
}

func importDecl() dst.Decl {
	decl := &dst.GenDecl{
		Tok: token.IMPORT,
		Specs: []dst.Spec{&dst.ImportSpec{
			Path: &dst.BasicLit{Kind: token.STRING, Value: fmt.Sprintf("%q", enumdexPath)},
		}},
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

func (e *emitter) shapeDecls(shape *model.Shape) ([]dst.Decl, error) {
	switch shape.Kind {
	case model.KindIota:
		return e.iotaDecls(shape), nil
	case model.KindSum:
		return e.sumDecls(shape), nil
	}
	return nil, fmt.Errorf("unknown shape kind %d for %s", shape.Kind, shape.Name)
}

// iotaDecls covers iota enums: the Len constant plus an Ordinal descriptor,
// since the encoding is the identity.
func (e *emitter) iotaDecls(shape *model.Shape) []dst.Decl {
	lenName := shape.Name + "Len"

	ordinal := call(
		&dst.IndexExpr{X: sel(ident("enumdex"), "Ordinal"), Index: ident(shape.Name)},
		ident(lenName),
	)
	return []dst.Decl{
		e.lenConst(shape.Name, intLit(len(shape.Variants))),
		e.descriptorVar(shape, ordinal),
	}
}

// sumDecls covers sum types: Len constant, descriptor, an unexported
// zero-size domain struct, and its Len/Index/Value methods.
func (e *emitter) sumDecls(shape *model.Shape) []dst.Decl {
	recv := "domainOf" + upperFirst(shape.Name)

	structDecl := &dst.GenDecl{
		Tok: token.TYPE,
		Specs: []dst.Spec{&dst.TypeSpec{
			Name: ident(recv),
			Type: &dst.StructType{Fields: &dst.FieldList{}},
		}},
	}
	structDecl.Decs.Before = dst.EmptyLine

	return []dst.Decl{
		e.lenConst(shape.Name, e.shapeLen(shape)),
		e.descriptorVar(shape, &dst.CompositeLit{Type: ident(recv)}),
		structDecl,
		method(recv, "Len", nil, []*dst.Field{result("int")},
			[]dst.Stmt{ret(ident(shape.Name + "Len"))}),
		e.indexMethod(shape, recv),
		e.valueMethod(shape, recv),
	}
}

func (e *emitter) lenConst(typeName string, value dst.Expr) dst.Decl {
	name := typeName + "Len"
	decl := &dst.GenDecl{
		Tok: token.CONST,
		Specs: []dst.Spec{&dst.ValueSpec{
			Names:  []*dst.Ident{ident(name)},
			Values: []dst.Expr{value},
		}},
	}
	decl.Decs.Before = dst.EmptyLine
	decl.Decs.Start.Append(fmt.Sprintf("// %s is the cardinality of the %s domain.", name, typeName))
	return decl
}

func (e *emitter) descriptorVar(shape *model.Shape, value dst.Expr) dst.Decl {
	decl := &dst.GenDecl{
		Tok: token.VAR,
		Specs: []dst.Spec{&dst.ValueSpec{
			Names:  []*dst.Ident{ident(shape.Descriptor)},
			Type:   &dst.IndexExpr{X: sel(ident("enumdex"), "Domain"), Index: ident(shape.Name)},
			Values: []dst.Expr{value},
		}},
	}
	decl.Decs.Before = dst.EmptyLine
	decl.Decs.Start.Append(fmt.Sprintf("// %s indexes %s values densely in [0, %sLen).",
		shape.Descriptor, shape.Name, shape.Name))
	return decl
}

// shapeLen is the sum of variant cardinalities: 1 per unit variant, the
// product of field cardinalities otherwise.
func (e *emitter) shapeLen(shape *model.Shape) dst.Expr {
	terms := make([]dst.Expr, len(shape.Variants))
	for i, v := range shape.Variants {
		terms[i] = e.variantLen(v)
	}
	return sum(terms)
}

func (e *emitter) variantLen(v model.Variant) dst.Expr {
	if len(v.Fields) == 0 {
		return intLit(1)
	}
	factors := make([]dst.Expr, len(v.Fields))
	for i, f := range v.Fields {
		factors[i] = e.fieldLen(f.Dom)
	}
	return product(factors)
}

func (e *emitter) fieldLen(d model.FieldDomain) dst.Expr {
	switch d.Kind {
	case model.FieldBool:
		return intLit(2)
	case model.FieldByte:
		return intLit(256)
	case model.FieldNamed:
		return ident(d.Named + "Len")
	case model.FieldArray:
		factors := make([]dst.Expr, d.ArrayLen)
		for i := range factors {
			factors[i] = e.fieldLen(*d.Elem)
		}
		return product(factors)
	}
	panic(fmt.Sprintf("emit: unknown field kind %d", d.Kind))
}

// offset is the base of a variant's index sub-range: the summed
// cardinalities of all preceding variants. nil means zero.
func (e *emitter) offset(shape *model.Shape, i int) dst.Expr {
	if i == 0 {
		return nil
	}
	terms := make([]dst.Expr, i)
	for j := range i {
		terms[j] = e.variantLen(shape.Variants[j])
	}
	return sum(terms)
}

// indexMethod encodes a value: variant base offset plus the Horner-form
// mixed-radix weighting of its fields, last field fastest.
func (e *emitter) indexMethod(shape *model.Shape, recv string) *dst.FuncDecl {
	params := []*dst.Field{param("k", shape.Name)}
	results := []*dst.Field{result("int")}
	failure := panicStmt("enumdex: invalid " + shape.Name + " value")

	if len(shape.Variants) == 0 {
		return method(recv, "Index", params, results, []dst.Stmt{failure})
	}

	anyFields := false
	for _, v := range shape.Variants {
		if len(v.Fields) > 0 {
			anyFields = true
		}
	}

	var cases []dst.Stmt
	for i, v := range shape.Variants {
		var expr dst.Expr
		lo := e.offset(shape, i)
		if len(v.Fields) == 0 {
			if lo == nil {
				lo = intLit(0)
			}
			expr = lo
		} else {
			acc := e.fieldIndex(v.Fields[0])
			for _, f := range v.Fields[1:] {
				acc = add(mul(acc, e.fieldLen(f.Dom)), e.fieldIndex(f))
			}
			if lo != nil {
				acc = add(lo, acc)
			}
			expr = acc
		}
		cases = append(cases, &dst.CaseClause{
			List: []dst.Expr{ident(v.Name)},
			Body: []dst.Stmt{ret(expr)},
		})
	}

	assert := &dst.TypeAssertExpr{X: ident("k")}
	var guard dst.Stmt
	if anyFields {
		guard = &dst.AssignStmt{
			Lhs: []dst.Expr{ident("k")},
			Tok: token.DEFINE,
			Rhs: []dst.Expr{assert},
		}
	} else {
		guard = &dst.ExprStmt{X: assert}
	}
	sw := &dst.TypeSwitchStmt{Assign: guard, Body: &dst.BlockStmt{List: cases}}
	return method(recv, "Index", params, results, []dst.Stmt{sw, failure})
}

// fieldIndex is the dense index of one field of the receiver value k.
func (e *emitter) fieldIndex(f model.Field) dst.Expr {
	kf := sel(ident("k"), f.Name)
	switch f.Dom.Kind {
	case model.FieldBool, model.FieldNamed:
		return call(sel(e.domainExpr(f.Dom), "Index"), kf)
	case model.FieldByte:
		return call(ident("int"), kf)
	case model.FieldArray:
		return call(sel(e.domainExpr(f.Dom), "Index"), &dst.SliceExpr{X: kf})
	}
	panic(fmt.Sprintf("emit: unknown field kind %d", f.Dom.Kind))
}

// domainExpr names the Domain value that indexes a field.
func (e *emitter) domainExpr(d model.FieldDomain) dst.Expr {
	switch d.Kind {
	case model.FieldBool:
		return sel(ident("enumdex"), "Bool")
	case model.FieldByte:
		return sel(ident("enumdex"), "Byte")
	case model.FieldNamed:
		return ident(e.descFor(d.Named))
	case model.FieldArray:
		return call(sel(ident("enumdex"), "SliceOf"), e.domainExpr(*d.Elem), intLit(d.ArrayLen))
	}
	panic(fmt.Sprintf("emit: unknown field kind %d", d.Kind))
}

// valueMethod decodes an index: locate the variant whose sub-range holds i,
// then peel fields off the residual fastest-to-slowest with mod and div.
func (e *emitter) valueMethod(shape *model.Shape, recv string) *dst.FuncDecl {
	params := []*dst.Field{param("i", "int")}
	results := []*dst.Field{result(shape.Name)}
	failure := panicStmt("enumdex: index out of range for " + shape.Name)

	if len(shape.Variants) == 0 {
		return method(recv, "Value", params, results, []dst.Stmt{failure})
	}

	var cases []dst.Stmt
	for i, v := range shape.Variants {
		hi := e.offset(shape, i+1)
		cases = append(cases, &dst.CaseClause{
			List: []dst.Expr{lt(ident("i"), parenAdditive(hi))},
			Body: e.decodeVariant(shape, i, v),
		})
	}
	sw := &dst.SwitchStmt{Body: &dst.BlockStmt{List: cases}}
	return method(recv, "Value", params, results, []dst.Stmt{sw, failure})
}

func (e *emitter) decodeVariant(shape *model.Shape, i int, v model.Variant) []dst.Stmt {
	lit := &dst.CompositeLit{Type: ident(v.Name)}
	if len(v.Fields) == 0 {
		return []dst.Stmt{ret(lit)}
	}

	var stmts []dst.Stmt
	if lo := e.offset(shape, i); lo == nil {
		stmts = append(stmts, define("r", ident("i")))
	} else {
		stmts = append(stmts, define("r", sub(ident("i"), lo)))
	}

	temps := make([]string, len(v.Fields))
	for j := len(v.Fields) - 1; j >= 1; j-- {
		f := v.Fields[j]
		temps[j] = fmt.Sprintf("f%d", j)
		stmts = append(stmts,
			define(temps[j], e.fieldValue(f.Dom, rem(ident("r"), e.fieldLen(f.Dom)))),
			divAssign("r", e.fieldLen(f.Dom)),
		)
	}
	temps[0] = "f0"
	stmts = append(stmts, define(temps[0], e.fieldValue(v.Fields[0].Dom, ident("r"))))

	for j, f := range v.Fields {
		lit.Elts = append(lit.Elts, &dst.KeyValueExpr{
			Key:   ident(f.Name),
			Value: ident(temps[j]),
		})
	}
	return append(stmts, ret(lit))
}

// fieldValue reconstructs one field from its dense index expression.
func (e *emitter) fieldValue(d model.FieldDomain, x dst.Expr) dst.Expr {
	switch d.Kind {
	case model.FieldBool, model.FieldNamed:
		return call(sel(e.domainExpr(d), "Value"), x)
	case model.FieldByte:
		return call(ident("uint8"), x)
	case model.FieldArray:
		conv := &dst.ArrayType{Len: intLit(d.ArrayLen), Elt: e.typeExpr(*d.Elem)}
		return call(conv, call(sel(e.domainExpr(d), "Value"), x))
	}
	panic(fmt.Sprintf("emit: unknown field kind %d", d.Kind))
}

// typeExpr spells a field domain's Go type, for array conversions.
func (e *emitter) typeExpr(d model.FieldDomain) dst.Expr {
	switch d.Kind {
	case model.FieldBool:
		return ident("bool")
	case model.FieldByte:
		return ident("uint8")
	case model.FieldNamed:
		return ident(d.Named)
	}
	panic(fmt.Sprintf("emit: no type expression for field kind %d", d.Kind))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
