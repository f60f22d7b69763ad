package ast

import "strings"

type (
	Node interface{}

	Expr interface {
		expr()
	}

	Stmt interface {
		stmt()
	}

	// UType is a type name known to the front end.
	UType int

	// Radix of a numeric literal inferred from its prefix.
	Radix int

	Program struct {
		Stmts []Stmt
	}

	Func struct {
		Name Ident
		Args []Arg
		Ret  UType
		Body []Stmt
	}

	Arg struct {
		Name Ident
		Type UType
	}

	FuncDecl struct {
		Func Func
	}

	// Return with nil Value is a bare return.
	Return struct {
		Value Expr
	}

	// NConst is a numeric literal kept as written, prefix and separators included.
	NConst string

	StrConst string

	Ident string

	FuncCall struct {
		Name Ident
		Args []Expr
	}

	TypeName struct {
		Name string
		Type UType
	}
)

const (
	Nothing UType = iota
	I64
)

const (
	Dec Radix = 10
	Hex Radix = 16
	Bin Radix = 2
)

// Types lists type keywords in the order they are tried.
var Types = []TypeName{
	{Name: "i64", Type: I64},
}

func (NConst) expr()   {}
func (StrConst) expr() {}
func (Ident) expr()    {}
func (FuncCall) expr() {}

func (FuncDecl) stmt() {}
func (Return) stmt()   {}

func (t UType) String() string {
	for _, n := range Types {
		if n.Type == t {
			return n.Name
		}
	}

	if t == Nothing {
		return "nothing"
	}

	return "UType(?)"
}

// Size is the slot width in bytes.
func (t UType) Size() int {
	switch t {
	case I64:
		return 8
	default:
		return 0
	}
}

func (n NConst) Radix() Radix {
	switch {
	case strings.HasPrefix(string(n), "0x"):
		return Hex
	case strings.HasPrefix(string(n), "0b"):
		return Bin
	default:
		return Dec
	}
}

// Digits returns literal digits without radix prefix and separators.
func (n NConst) Digits() string {
	s := strings.TrimPrefix(string(n), n.Radix().Prefix())

	return strings.ReplaceAll(s, "_", "")
}

func (r Radix) Prefix() string {
	switch r {
	case Hex:
		return "0x"
	case Bin:
		return "0b"
	default:
		return ""
	}
}
