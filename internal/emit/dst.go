package emit

import (
	"go/token"
	"strconv"

	"github.com/dave/dst"
)

// Node constructors. dst forbids sharing nodes between tree positions, so
// every helper builds fresh nodes and callers never reuse a returned
// expression.

func ident(name string) *dst.Ident { return dst.NewIdent(name) }

func intLit(n int) *dst.BasicLit {
	return &dst.BasicLit{Kind: token.INT, Value: strconv.Itoa(n)}
}

func strLit(s string) *dst.BasicLit {
	return &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func sel(x dst.Expr, name string) *dst.SelectorExpr {
	return &dst.SelectorExpr{X: x, Sel: ident(name)}
}

func call(fun dst.Expr, args ...dst.Expr) *dst.CallExpr {
	return &dst.CallExpr{Fun: fun, Args: args}
}

// add builds x + y.
func add(x, y dst.Expr) dst.Expr {
	return &dst.BinaryExpr{X: x, Op: token.ADD, Y: y}
}

// sub builds x - y, parenthesizing an additive y.
func sub(x, y dst.Expr) dst.Expr {
	return &dst.BinaryExpr{X: x, Op: token.SUB, Y: parenAdditive(y)}
}

// mul builds x * y, parenthesizing additive operands since the printer
// renders the tree structure as-is.
func mul(x, y dst.Expr) dst.Expr {
	return &dst.BinaryExpr{X: parenAdditive(x), Op: token.MUL, Y: parenAdditive(y)}
}

// rem builds x % y with the same parenthesization rule as mul.
func rem(x, y dst.Expr) dst.Expr {
	return &dst.BinaryExpr{X: parenAdditive(x), Op: token.REM, Y: parenAdditive(y)}
}

func parenAdditive(x dst.Expr) dst.Expr {
	if b, ok := x.(*dst.BinaryExpr); ok && (b.Op == token.ADD || b.Op == token.SUB) {
		return &dst.ParenExpr{X: x}
	}
	return x
}

// lt builds x < y.
func lt(x, y dst.Expr) dst.Expr {
	return &dst.BinaryExpr{X: x, Op: token.LSS, Y: y}
}

// sum folds terms with +; an empty term list folds to 0.
func sum(terms []dst.Expr) dst.Expr {
	if len(terms) == 0 {
		return intLit(0)
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = add(acc, t)
	}
	return acc
}

// product folds factors with *; an empty factor list folds to 1.
func product(factors []dst.Expr) dst.Expr {
	if len(factors) == 0 {
		return intLit(1)
	}
	acc := factors[0]
	for _, f := range factors[1:] {
		acc = mul(acc, f)
	}
	return acc
}

func define(name string, rhs dst.Expr) dst.Stmt {
	return &dst.AssignStmt{
		Lhs: []dst.Expr{ident(name)},
		Tok: token.DEFINE,
		Rhs: []dst.Expr{rhs},
	}
}

func divAssign(name string, rhs dst.Expr) dst.Stmt {
	return &dst.AssignStmt{
		Lhs: []dst.Expr{ident(name)},
		Tok: token.QUO_ASSIGN,
		Rhs: []dst.Expr{parenAdditive(rhs)},
	}
}

func ret(x dst.Expr) dst.Stmt {
	return &dst.ReturnStmt{Results: []dst.Expr{x}}
}

func panicStmt(message string) dst.Stmt {
	return &dst.ExprStmt{X: call(ident("panic"), strLit(message))}
}

// method builds a method declaration on an anonymous value receiver of the
// named type, e.g. `func (fooDomain) Index(k Foo) int { ... }`.
func method(recvType, name string, params, results []*dst.Field, body []dst.Stmt) *dst.FuncDecl {
	decl := &dst.FuncDecl{
		Recv: &dst.FieldList{List: []*dst.Field{{Type: ident(recvType)}}},
		Name: ident(name),
		Type: &dst.FuncType{
			Params:  &dst.FieldList{List: params},
			Results: &dst.FieldList{List: results},
		},
		Body: &dst.BlockStmt{List: body},
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

func param(name, typ string) *dst.Field {
	return &dst.Field{Names: []*dst.Ident{ident(name)}, Type: ident(typ)}
}

func result(typ string) *dst.Field {
	return &dst.Field{Type: ident(typ)}
}
