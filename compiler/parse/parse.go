package parse

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/AlexPikalov/uno/compiler/ast"
)

type (
	// State is a source unit set. Each added file is parsed as a separate unit.
	State struct {
		b []byte // all files concatenated

		Grammar Parser

		files []file

		// furthest failure of the unit being parsed
		far      int
		expected []string
		quiet    int
	}

	file struct {
		base int
		size int
		name string
	}

	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x ast.Node, i int, err error)
	}

	SyntaxError struct {
		File string
		Pos  int // offset in File
		Line int
		Col  int

		Found    string
		Expected []string
	}

	stateCtxKey struct{}
)

func ParseFile(ctx context.Context, name string) (*ast.Program, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	s := New()

	s.AddFile(name, data)

	return s.Parse(ctx)
}

func Parse(ctx context.Context, text []byte) (*ast.Program, error) {
	s := New()

	s.AddFile("", text)

	return s.Parse(ctx)
}

// Rule parses the whole text with p.
func Rule(ctx context.Context, p Parser, text []byte) (ast.Node, error) {
	s := New()

	s.AddFile("", text)

	return s.parseUnit(ctx, p, s.files[0])
}

func New() *State {
	return &State{
		Grammar: Program{},
	}
}

func (s *State) AddFile(name string, text []byte) {
	f := file{
		name: name,
		base: len(s.b),
		size: len(text),
	}

	s.b = append(s.b, text...)

	s.files = append(s.files, f)
}

func (s *State) Parse(ctx context.Context) (prog *ast.Program, err error) {
	prog = &ast.Program{}

	for _, f := range s.files {
		x, err := s.parseUnit(ctx, s.Grammar, f)
		if err != nil {
			return nil, err
		}

		p, ok := x.(*ast.Program)
		if !ok {
			return nil, errors.New("grammar result: %T, want %T", x, prog)
		}

		prog.Stmts = append(prog.Stmts, p.Stmts...)
	}

	return prog, nil
}

func (s *State) parseUnit(ctx context.Context, p Parser, f file) (x ast.Node, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse unit", "file", f.name, "size", f.size)
	defer tr.Finish("err", &err)

	s.far = f.base
	s.expected = s.expected[:0]
	s.quiet = 0

	ctx = context.WithValue(ctx, stateCtxKey{}, s)

	end := f.base + f.size

	x, i, err := p.Parse(ctx, s.b[:end], f.base)
	if err == nil && i == end {
		return x, nil
	}

	if err == nil && i > s.far {
		s.far = i
		s.expected = append(s.expected[:0], "end of input")
	}

	if tr.If("parse_error") {
		tr.Printw("parse failed", "err", err, "i", i, "far", s.far, "expected", s.expected)
	}

	return nil, s.syntaxError(f, end)
}

func (s *State) syntaxError(f file, end int) *SyntaxError {
	pos := s.far
	text := s.b[f.base:pos]

	e := &SyntaxError{
		File:     f.name,
		Pos:      pos - f.base,
		Line:     1 + bytes.Count(text, []byte{'\n'}),
		Col:      1 + len(text) - (bytes.LastIndexByte(text, '\n') + 1),
		Expected: append([]string{}, s.expected...),
	}

	if pos < end {
		e.Found = fmt.Sprintf("%q", s.b[pos:pos+1])
	} else {
		e.Found = "end of input"
	}

	return e
}

func (s *State) expect(pos int, what string) {
	if s.quiet != 0 || pos < s.far {
		return
	}

	if pos > s.far {
		s.far = pos
		s.expected = s.expected[:0]
	}

	for _, e := range s.expected {
		if e == what {
			return
		}
	}

	s.expected = append(s.expected, what)
}

func StateFromContext(ctx context.Context) *State {
	s, _ := ctx.Value(stateCtxKey{}).(*State)
	return s
}

// expected records a failed match at pos and returns the rule error.
func expected(ctx context.Context, pos int, what string) error {
	if s := StateFromContext(ctx); s != nil {
		s.expect(pos, what)
	}

	return errors.New("%v expected", what)
}

func (e *SyntaxError) Error() string {
	var b strings.Builder

	if e.File != "" {
		b.WriteString(e.File)
		b.WriteByte(':')
	}

	fmt.Fprintf(&b, "%d:%d: unexpected %s", e.Line, e.Col, e.Found)

	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ", expected %s", e.Expected[0])
	default:
		fmt.Fprintf(&b, ", expected one of: %s", strings.Join(e.Expected, ", "))
	}

	return b.String()
}
