package format

import (
	"context"
	"strings"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/AlexPikalov/uno/compiler/ast"
)

// Format appends canonical source text of x to b.
// x is a *ast.Program, ast.Func, ast.Stmt or ast.Expr.
func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	return format(ctx, b, x, 0)
}

func format(ctx context.Context, b []byte, x any, d int) ([]byte, error) {
	switch x := x.(type) {
	case *ast.Program:
		return formatProgram(ctx, b, x, d)
	case ast.Func:
		return formatFunc(ctx, b, x, d)
	case ast.Stmt:
		return formatStmts(ctx, b, []ast.Stmt{x}, d)
	case ast.Expr:
		return formatExpr(ctx, b, x)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

func formatProgram(ctx context.Context, b []byte, x *ast.Program, d int) (_ []byte, err error) {
	for i, s := range x.Stmts {
		if _, ok := s.(ast.FuncDecl); ok && i != 0 {
			b = append(b, '\n')
		}

		b, err = formatStmts(ctx, b, x.Stmts[i:i+1], d)
		if err != nil {
			return nil, errors.Wrap(err, "stmt %d", i)
		}
	}

	return b, nil
}

func formatFunc(ctx context.Context, b []byte, x ast.Func, d int) (_ []byte, err error) {
	b = app(b, d, "fn %s(", x.Name)

	for i, a := range x.Args {
		if i != 0 {
			b = append(b, ", "...)
		}

		if a.Type == ast.Nothing {
			return nil, errors.New("arg %v: no type", a.Name)
		}

		b = app(b, 0, "%s %s", a.Name, a.Type.String())
	}

	b = append(b, ")"...)

	if x.Ret != ast.Nothing {
		b = app(b, 0, " %s", x.Ret.String())
	}

	b = append(b, " {\n"...)

	b, err = formatStmts(ctx, b, x.Body, d+1)
	if err != nil {
		return nil, errors.Wrap(err, "func %v", x.Name)
	}

	b = app(b, d, "}\n")

	return b, nil
}

func formatStmts(ctx context.Context, b []byte, l []ast.Stmt, d int) (_ []byte, err error) {
	for _, s := range l {
		switch s := s.(type) {
		case ast.FuncDecl:
			b, err = formatFunc(ctx, b, s.Func, d)
			if err != nil {
				return nil, err
			}
		case ast.Return:
			b = app(b, d, "return")

			if s.Value != nil {
				b = append(b, ' ')

				b, err = formatExpr(ctx, b, s.Value)
				if err != nil {
					return nil, errors.Wrap(err, "return")
				}
			}

			b = append(b, '\n')
		default:
			return nil, errors.New("unsupported stmt: %T", s)
		}
	}

	return b, nil
}

func formatExpr(ctx context.Context, b []byte, x ast.Expr) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.NConst:
		b = append(b, x...)
	case ast.Ident:
		b = append(b, x...)
	case ast.StrConst:
		if strings.ContainsAny(string(x), "\"\n") {
			return nil, errors.New("string can't be represented: %q", x)
		}

		b = append(b, '"')
		b = append(b, x...)
		b = append(b, '"')
	case ast.FuncCall:
		b = append(b, x.Name...)
		b = append(b, '(')

		for i, a := range x.Args {
			if i != 0 {
				b = append(b, ", "...)
			}

			b, err = formatExpr(ctx, b, a)
			if err != nil {
				return nil, errors.Wrap(err, "%v arg %d", x.Name, i)
			}
		}

		b = append(b, ')')
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"

	for d > len(tabs) {
		b = append(b, tabs...)
		d -= len(tabs)
	}

	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)

	return b
}
