package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	// Stmt is a function declaration, a return or a blank line.
	Stmt struct{}

	// Stmts parses statements greedily and drops blank lines.
	Stmts struct{}

	Return struct{}

	BlankLine struct{}

	// blankLine never leaves this package.
	blankLine struct{}
)

func (p Stmt) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AnyOf{
		Func{},
		Return{},
		BlankLine{},
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	if f, ok := x.(ast.Func); ok {
		x = ast.FuncDecl{Func: f}
	}

	return x, i, nil
}

func (p Stmts) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = Many{Of: Stmt{}}.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	var res []ast.Stmt

	for _, s := range x.([]ast.Node) {
		switch s := s.(type) {
		case blankLine:
		case ast.Stmt:
			res = append(res, s)
		default:
			return nil, i, errors.New("unexpected statement: %T", s)
		}
	}

	return res, i, nil
}

func (p Return) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AllOf{
		SpaceTab,
		Keyword("return"),
		Optional{Spaced(Expr{}, SpaceTab)},
		SpaceTab,
		Const("\n"),
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	xt := x.([]ast.Node)

	res := ast.Return{}

	if v, ok := xt[2].(ast.Expr); ok {
		res.Value = v
	}

	return res, i, nil
}

func (p BlankLine) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	_, i, err = AllOf{SpaceTab, Const("\n")}.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	return blankLine{}, i, nil
}
