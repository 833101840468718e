package ast

import (
	"strings"

	"github.com/gyre-lang/gyre/internal/token"
)

// Number is a numeric literal. All gyre numbers are float64.
type Number struct {
	Tok   token.Token
	Value float64
}

func (n *Number) exprNode()          {}
func (n *Number) Token() token.Token { return n.Tok }
func (n *Number) String() string     { return n.Tok.Literal }

// Bool is a boolean literal.
type Bool struct {
	Tok   token.Token
	Value bool
}

func (b *Bool) exprNode()          {}
func (b *Bool) Token() token.Token { return b.Tok }
func (b *Bool) String() string     { return b.Tok.Literal }

// String is a string literal. When the literal contains \(...) interpolation
// markers, Parts holds the alternating fixed text and embedded expressions;
// otherwise Parts is nil and Value is the complete text.
type String struct {
	Tok   token.Token
	Value string
	Parts []Expr
}

func (s *String) exprNode()          {}
func (s *String) Token() token.Token { return s.Tok }
func (s *String) String() string     { return "\"" + s.Tok.Literal + "\"" }

// StringText is a fixed text segment of an interpolated string.
type StringText struct {
	Tok   token.Token
	Value string
}

func (s *StringText) exprNode()          {}
func (s *StringText) Token() token.Token { return s.Tok }
func (s *StringText) String() string     { return s.Value }

// Ident refers to a variable by name.
type Ident struct {
	Tok  token.Token
	Name string
}

func (i *Ident) exprNode()          {}
func (i *Ident) Token() token.Token { return i.Tok }
func (i *Ident) String() string     { return i.Name }

// Prefix is a unary operation, e.g. -x.
type Prefix struct {
	Tok      token.Token
	Operator string
	Right    Expr
}

func (p *Prefix) exprNode()          {}
func (p *Prefix) Token() token.Token { return p.Tok }
func (p *Prefix) String() string     { return "(" + p.Operator + p.Right.String() + ")" }

// Infix is a binary arithmetic operation, e.g. a + b.
type Infix struct {
	Tok      token.Token
	Left     Expr
	Operator string
	Right    Expr
}

func (i *Infix) exprNode()          {}
func (i *Infix) Token() token.Token { return i.Tok }
func (i *Infix) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}

// Argument is one keyword argument of a call: a parameter name and the
// expression supplying its value.
type Argument struct {
	Name  string
	Value Expr
}

// Call invokes a built-in function with keyword arguments, e.g.
// line(from: a, to: b). Argument order is preserved from the source.
type Call struct {
	Tok  token.Token
	Name string
	Args []Argument
}

func (c *Call) exprNode()          {}
func (c *Call) Token() token.Token { return c.Tok }
func (c *Call) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		b.WriteString(arg.Value.String())
	}
	b.WriteString(")")
	return b.String()
}

// Arg returns the argument expression for the given parameter name.
func (c *Call) Arg(name string) (Expr, bool) {
	for _, arg := range c.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}
