package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	// Spaces is a set of skippable bytes. As a Parser it matches zero or more of them.
	Spaces uint64

	Spacer struct {
		Spaces Spaces
		Of     Parser
	}
)

var (
	SpaceTab   = NewSpaces(' ', '\t')
	SpaceLines = NewSpaces(' ', '\t', '\n')
)

func NewSpaces(skip ...byte) (ss Spaces) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s Spaces) Skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && b[i] < 64 && s&(1<<b[i]) != 0 {
		i++
	}

	return
}

func (s Spaces) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	return None{}, s.Skip(b, st), nil
}

func Spaced(p Parser, ss Spaces) Spacer {
	return Spacer{
		Spaces: ss,
		Of:     p,
	}
}

func (p Spacer) Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error) {
	vst := p.Spaces.Skip(b, st)

	x, i, err = p.Of.Parse(ctx, b, vst)
	if err != nil {
		if i == vst {
			i = st
		}

		err = errors.Wrap(err, "%T", p.Of)
	}

	return
}
