package parse

import (
	"context"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	// Program is a whole source unit: a top level statement sequence.
	Program struct{}
)

func (p Program) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = Stmts{}.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	return &ast.Program{
		Stmts: x.([]ast.Stmt),
	}, i, nil
}
