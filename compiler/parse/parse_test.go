package parse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexPikalov/uno/compiler/ast"
)

const testProgram = `
fn h8(class i64, text i64) i64 {
	return 0
}

fn main(argc i64, argv i64) i64 {

	return h8(argc, "text")
}
fn noop() {
	return
}
`

func TestParseProgram(t *testing.T) {
	ctx := context.Background()

	prog, err := Parse(ctx, []byte(testProgram))
	require.NoError(t, err)

	i64 := func(n ast.Ident) ast.Arg { return ast.Arg{Name: n, Type: ast.I64} }

	assert.Equal(t, &ast.Program{
		Stmts: []ast.Stmt{
			ast.FuncDecl{Func: ast.Func{
				Name: "h8",
				Args: []ast.Arg{i64("class"), i64("text")},
				Ret:  ast.I64,
				Body: []ast.Stmt{ast.Return{Value: ast.NConst("0")}},
			}},
			ast.FuncDecl{Func: ast.Func{
				Name: "main",
				Args: []ast.Arg{i64("argc"), i64("argv")},
				Ret:  ast.I64,
				Body: []ast.Stmt{ast.Return{Value: ast.FuncCall{
					Name: "h8",
					Args: []ast.Expr{ast.Ident("argc"), ast.StrConst("text")},
				}}},
			}},
			ast.FuncDecl{Func: ast.Func{
				Name: "noop",
				Body: []ast.Stmt{ast.Return{}},
			}},
		},
	}, prog)
}

func TestParseEmpty(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{"", "\n", "\n  \n\t\n"} {
		prog, err := Parse(ctx, []byte(in))
		require.NoError(t, err, "%q", in)
		assert.Empty(t, prog.Stmts)
	}
}

func TestParseTrailingInput(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{
		"fn main() {}\nx",
		"fn main() {}\n  ",
		"fn main() {}\n}\n",
		"fn main() {}",
	} {
		prog, err := Parse(ctx, []byte(in))
		assert.Error(t, err, "%q", in)
		assert.Nil(t, prog)
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	ctx := context.Background()

	_, err := Parse(ctx, []byte("fn main() i64 {\nreturn 12x\n}\n"))

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)

	assert.Equal(t, 2, serr.Line)
	assert.Equal(t, 10, serr.Col)
	assert.Equal(t, `"x"`, serr.Found)
	assert.Contains(t, serr.Expected, `"\n"`)
	assert.Contains(t, serr.Expected, "[0-9_]")
	assert.Equal(t, `2:10: unexpected "x", expected one of: [0-9_], "\n"`, serr.Error())
}

func TestSyntaxErrorEndOfInput(t *testing.T) {
	ctx := context.Background()

	_, err := Parse(ctx, []byte("fn main() {\n\treturn 1\n}"))

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)

	assert.Equal(t, 3, serr.Line)
	assert.Equal(t, 2, serr.Col)
	assert.Equal(t, "end of input", serr.Found)
	assert.Equal(t, []string{`"\n"`}, serr.Expected)
}

func TestStateFiles(t *testing.T) {
	ctx := context.Background()

	s := New()
	s.AddFile("a.uno", []byte("fn a() {\n}\n"))
	s.AddFile("b.uno", []byte("\nfn b() i64 {\n\treturn 1\n}\n"))

	prog, err := s.Parse(ctx)
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)
	assert.Equal(t, ast.Ident("a"), prog.Stmts[0].(ast.FuncDecl).Func.Name)
	assert.Equal(t, ast.Ident("b"), prog.Stmts[1].(ast.FuncDecl).Func.Name)

	s.AddFile("c.uno", []byte("fn c() {\n\treturn 0b3\n}\n"))

	_, err = s.Parse(ctx)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "c.uno", serr.File)
	assert.Equal(t, 2, serr.Line)
	assert.Equal(t, 11, serr.Col)
	assert.Contains(t, serr.Error(), "c.uno:2:11: ")
}

// A unit must not continue into the next file.
func TestStateFilesSplit(t *testing.T) {
	ctx := context.Background()

	s := New()
	s.AddFile("a.uno", []byte("fn a() {\n"))
	s.AddFile("b.uno", []byte("}\n"))

	_, err := s.Parse(ctx)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "a.uno", serr.File)
}

func TestParseFile(t *testing.T) {
	ctx := context.Background()

	name := filepath.Join(t.TempDir(), "main.uno")

	err := os.WriteFile(name, []byte(testProgram), 0o644)
	require.NoError(t, err)

	prog, err := ParseFile(ctx, name)
	require.NoError(t, err)
	assert.Len(t, prog.Stmts, 3)

	_, err = ParseFile(ctx, name+".missing")
	assert.Error(t, err)
}

func TestNoBlankLineLeaks(t *testing.T) {
	ctx := context.Background()

	prog, err := Parse(ctx, []byte("\n\nfn a() {\n\n\tfn b() {\n\n\t}\n\n\treturn\n\n}\n\nreturn 1\n\n"))
	require.NoError(t, err)

	var walk func(l []ast.Stmt)
	walk = func(l []ast.Stmt) {
		for _, s := range l {
			switch s := s.(type) {
			case ast.FuncDecl:
				walk(s.Func.Body)
			case ast.Return:
			default:
				t.Errorf("unexpected statement: %T", s)
			}
		}
	}

	walk(prog.Stmts)

	assert.Len(t, prog.Stmts, 2)
}
