package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexPikalov/uno/compiler/ast"
)

func TestIdent(t *testing.T) {
	ctx := context.Background()

	_, err := Rule(ctx, Ident{}, []byte("1abd"))
	assert.Error(t, err)

	_, err = Rule(ctx, Ident{}, nil)
	assert.Error(t, err)

	for _, in := range []string{"$askd12", "_", "a1_$", "ABC"} {
		x, err := Rule(ctx, Ident{}, []byte(in))
		require.NoError(t, err)
		assert.Equal(t, ast.Ident(in), x)
	}
}

// Keywords are not excluded at the atom level.
func TestIdentKeywords(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{"fn", "return", "i64"} {
		x, err := Rule(ctx, Ident{}, []byte(in))
		require.NoError(t, err)
		assert.Equal(t, ast.Ident(in), x)
	}
}

func TestStrConst(t *testing.T) {
	ctx := context.Background()

	for in, exp := range map[string]string{
		`""`:          "",
		`"hi"`:        "hi",
		`"a b\t'c'"`:  `a b\t'c'`,
		`"fn main()"`: "fn main()",
	} {
		x, err := Rule(ctx, StrConst{}, []byte(in))
		require.NoError(t, err, "%q", in)
		assert.Equal(t, ast.StrConst(exp), x)
	}

	for _, in := range []string{`"a"b"`, `"\"a\""`, "\"a\nb\"", `"open`} {
		_, err := Rule(ctx, StrConst{}, []byte(in))
		assert.Error(t, err, "%q", in)
	}
}

func TestType(t *testing.T) {
	ctx := context.Background()

	x, err := Rule(ctx, Type{}, []byte("i64"))
	require.NoError(t, err)
	assert.Equal(t, ast.I64, x)

	for _, in := range []string{"i1", "i64x", "nothing", ""} {
		_, err = Rule(ctx, Type{}, []byte(in))
		assert.Error(t, err, "%q", in)
	}
}

func TestKeyword(t *testing.T) {
	ctx := context.Background()

	_, i, err := Keyword("fn").Parse(ctx, []byte("fn main"), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, _, err = Keyword("fn").Parse(ctx, []byte("fnmain"), 0)
	assert.Error(t, err)

	_, i, err = Keyword("fn").Parse(ctx, []byte("fn"), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}
