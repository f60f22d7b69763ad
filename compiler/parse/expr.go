package parse

import (
	"context"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	Expr struct{}

	FuncCall struct{}
)

// Parse tries string, number, call, identifier in that order.
// Call must go before identifier as both start with a name.
func (p Expr) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AnyOf{
		StrConst{},
		Number{},
		FuncCall{},
		Ident{},
	}

	return r.Parse(ctx, b, st)
}

func (p FuncCall) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AllOf{
		Ident{},
		Const("("),
		SepBy{
			Of:  Expr{},
			Sep: comma,
		},
		Const(")"),
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	xt := x.([]ast.Node)

	res := ast.FuncCall{
		Name: xt[0].(ast.Ident),
	}

	for _, a := range xt[2].([]ast.Node) {
		res.Args = append(res.Args, a.(ast.Expr))
	}

	return res, i, nil
}
