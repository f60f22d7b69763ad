package parse

import (
	"context"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	// Func is a function declaration. Body must be closed by "}\n".
	Func struct{}

	// Arg is "name type".
	Arg struct{}
)

var comma = AllOf{Const(","), SpaceTab}

func (p Func) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AllOf{
		SpaceLines,
		Keyword("fn"),
		SpaceTab,
		Ident{},
		Const("("),
		SepBy{Of: Arg{}, Sep: comma},
		Const(")"),
		Optional{Spaced(Type{}, SpaceTab)},
		SpaceTab,
		Const("{"),
		Optional{Const("\n")},
		Stmts{},
		SpaceTab,
		Const("}"),
		Const("\n"),
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	xt := x.([]ast.Node)

	res := ast.Func{
		Name: xt[3].(ast.Ident),
		Body: xt[11].([]ast.Stmt),
	}

	for _, a := range xt[5].([]ast.Node) {
		res.Args = append(res.Args, a.(ast.Arg))
	}

	if t, ok := xt[7].(ast.UType); ok {
		res.Ret = t
	}

	return res, i, nil
}

func (p Arg) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = Ident{}.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	name := x.(ast.Ident)

	j := SpaceTab.Skip(b, i)
	if j == i {
		return nil, i, expected(ctx, i, "space")
	}

	x, i, err = Type{}.Parse(ctx, b, j)
	if err != nil {
		return nil, i, err
	}

	return ast.Arg{
		Name: name,
		Type: x.(ast.UType),
	}, i, nil
}
