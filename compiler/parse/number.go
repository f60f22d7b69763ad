package parse

import (
	"context"

	"github.com/AlexPikalov/uno/compiler/ast"
	"github.com/AlexPikalov/uno/compiler/set"
)

type (
	// NConst is a numeric literal: decimal, 0x hexadecimal or 0b binary.
	// The decimal form may be empty.
	NConst struct{}

	// Number is NConst that rejects empty text.
	Number struct{}
)

var (
	decDigits = set.ByteRange('0', '9').Or(set.NewBytes("_"))
	hexDigits = decDigits.Or(set.ByteRange('a', 'f')).Or(set.ByteRange('A', 'F'))
	binDigits = set.NewBytes("01_")

	radixMark = set.NewBytes("xb")
)

func (p NConst) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AnyOf{
		Capture{AllOf{
			Not{AllOf{Const("0"), Class(radixMark)}},
			Run(decDigits),
		}},
		Capture{AllOf{Const("0x"), Run(hexDigits)}},
		Capture{AllOf{Const("0b"), Run(binDigits)}},
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	return ast.NConst(x.(string)), i, nil
}

func (p Number) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = NConst{}.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	if i == st {
		return nil, st, expected(ctx, st, "number")
	}

	return x, i, nil
}
