package parse

import (
	"context"
	"fmt"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	None struct{}

	// Optional never fails. It yields None if Parser does not match.
	Optional struct {
		Parser
	}

	// Not is a negative lookahead. It consumes nothing.
	Not struct {
		Of Parser
	}

	// Quiet parses Of without recording expectations for error reports.
	Quiet struct {
		Of Parser
	}

	// Many matches Of zero or more times and yields []ast.Node.
	Many struct {
		Of Parser
	}

	// SepBy matches zero or more Of separated by Sep and yields []ast.Node.
	// Sep is consumed only if an element follows it.
	SepBy struct {
		Of  Parser
		Sep Parser
	}

	// Capture yields matched text as a string.
	Capture struct {
		Of Parser
	}

	AllOf []Parser

	// AnyOf is an ordered choice: the first matching alternative wins.
	AnyOf []Parser
)

func (None) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	return None{}, st, nil
}

func (p Optional) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	x, i, err = p.Parser.Parse(ctx, b, st)
	if err != nil {
		return None{}, st, nil
	}

	return
}

func (p Not) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	_, _, err = Quiet{p.Of}.Parse(ctx, b, st)
	if err == nil {
		return nil, st, errors.New("unexpected %T", p.Of)
	}

	return None{}, st, nil
}

func (p Quiet) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	if s := StateFromContext(ctx); s != nil {
		s.quiet++
		defer func() { s.quiet-- }()
	}

	return p.Of.Parse(ctx, b, st)
}

func (p Many) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	var res []ast.Node

	i = st

	for {
		y, j, err := p.Of.Parse(ctx, b, i)
		if err != nil || j == i {
			break
		}

		res = append(res, y)
		i = j
	}

	return res, i, nil
}

func (p SepBy) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	var res []ast.Node

	y, i, err := p.Of.Parse(ctx, b, st)
	if err != nil {
		return res, st, nil
	}

	res = append(res, y)

	for {
		_, j, err := p.Sep.Parse(ctx, b, i)
		if err != nil {
			break
		}

		y, j, err = p.Of.Parse(ctx, b, j)
		if err != nil {
			break
		}

		res = append(res, y)
		i = j
	}

	return res, i, nil
}

func (p Capture) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	_, i, err = p.Of.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	return string(b[st:i]), i, nil
}

func (p AllOf) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	i = st

	res := make([]ast.Node, len(p))

	for j, r := range p {
		x, i, err = r.Parse(ctx, b, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "%T (%d)", r, j)
		}

		res[j] = x
	}

	return res, i, nil
}

func (p AnyOf) Parse(ctx context.Context, b []byte, st int) (_ ast.Node, i int, err error) {
	tr := tlog.SpanFromContext(ctx)

	far := st

	for _, r := range p {
		x, j, e := r.Parse(ctx, b, st)

		if tr.If("parse_rule") {
			tr.Printw("choice", "st", st, "alt", tlog.NextAsType, r, "end", j, "err", e, "from", loc.Callers(1, 2))
		}

		if e == nil {
			return x, j, nil
		}

		if err == nil || j > far {
			far = j
			err = errors.Wrap(e, "%T", r)
		}
	}

	if far > st {
		return nil, far, err
	}

	return nil, st, errors.New("expected %v", joinHuman(p...))
}

func joinHuman(l ...Parser) string {
	switch len(l) {
	case 0:
		return "<none>"
	case 1:
		return fmt.Sprintf("%T", l[0])
	}

	var b strings.Builder

	for i, r := range l {
		if i+1 == len(l) {
			b.WriteString(" or ")
		} else if i != 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%T", r)
	}

	return b.String()
}
