package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/AlexPikalov/uno/compiler/ast"
	"github.com/AlexPikalov/uno/compiler/format"
	"github.com/AlexPikalov/uno/compiler/parse"
)

func ParseFiles(ctx context.Context, names ...string) (prog *ast.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse files", "files", names)
	defer tr.Finish("err", &err)

	s := parse.New()

	for _, name := range names {
		text, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(err, "read file %v", name)
		}

		tr.Printw("read file", "size", len(text), "name", name)

		s.AddFile(name, text)
	}

	prog, err = s.Parse(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	tr.Printw("parsed", "stmts", len(prog.Stmts))

	return prog, nil
}

func Parse(ctx context.Context, name string, text []byte) (prog *ast.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse", "name", name, "size", len(text))
	defer tr.Finish("err", &err)

	s := parse.New()

	s.AddFile(name, text)

	prog, err = s.Parse(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	tr.Printw("parsed", "stmts", len(prog.Stmts))

	return prog, nil
}

// Format parses the files and returns them in canonical form.
func Format(ctx context.Context, names ...string) (text []byte, err error) {
	prog, err := ParseFiles(ctx, names...)
	if err != nil {
		return nil, err
	}

	text, err = format.Format(ctx, nil, prog)
	if err != nil {
		return nil, errors.Wrap(err, "format")
	}

	return text, nil
}
