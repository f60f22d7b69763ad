package parse

import (
	"bytes"
	"context"
	"strconv"

	"tlog.app/go/tlog"

	"github.com/AlexPikalov/uno/compiler/ast"
	"github.com/AlexPikalov/uno/compiler/set"
)

type (
	Const []byte

	// Keyword is a Const not followed by an identifier byte.
	Keyword string

	// Class matches a single byte from the set.
	Class set.Bytes

	// Run matches zero or more bytes from the set and yields them as a string.
	Run set.Bytes

	Ident struct{}

	StrConst struct{}
)

var (
	identStart = set.ByteRange('a', 'z').Or(set.ByteRange('A', 'Z')).Or(set.NewBytes("_$"))
	identCont  = identStart.Or(set.ByteRange('0', '9'))

	strBody = set.ByteRange(0, 255).AndNot(set.NewBytes("\"\n"))
)

func (p Const) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if bytes.HasPrefix(b[st:], p) {
		return Const(b[st : st+len(p)]), st + len(p), nil
	}

	return nil, st, expected(ctx, st, strconv.Quote(string(p)))
}

func (p Keyword) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = st + len(p)

	if !bytes.HasPrefix(b[st:], []byte(p)) || i < len(b) && identCont.IsSet(b[i]) {
		return nil, st, expected(ctx, st, strconv.Quote(string(p)))
	}

	return p, i, nil
}

func (p Class) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if st < len(b) && set.Bytes(p).IsSet(b[st]) {
		return b[st], st + 1, nil
	}

	if tr := tlog.SpanFromContext(ctx); tr.If("parse_rule") {
		tr.Printw("class", "st", st, "class", set.Bytes(p))
	}

	return nil, st, expected(ctx, st, set.Bytes(p).String())
}

func (p Run) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = st + set.Bytes(p).Span(b[st:])

	if tr := tlog.SpanFromContext(ctx); tr.If("parse_rule") {
		tr.Printw("run", "st", st, "end", i, "class", set.Bytes(p))
	}

	if i < len(b) {
		_ = expected(ctx, i, set.Bytes(p).String())
	}

	return string(b[st:i]), i, nil
}

func (p Ident) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if st == len(b) || !identStart.IsSet(b[st]) {
		return nil, st, expected(ctx, st, "identifier")
	}

	i = st + 1 + identCont.Span(b[st+1:])

	return ast.Ident(b[st:i]), i, nil
}

func (p StrConst) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	r := AllOf{
		Const(`"`),
		Quiet{Run(strBody)},
		Const(`"`),
	}

	x, i, err = r.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	xt := x.([]ast.Node)

	return ast.StrConst(xt[1].(string)), i, nil
}
