package parse

import (
	"context"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	Type struct{}
)

func (p Type) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	for _, t := range ast.Types {
		_, i, err = Keyword(t.Name).Parse(ctx, b, st)
		if err == nil {
			return t.Type, i, nil
		}
	}

	return nil, st, expected(ctx, st, "type")
}
