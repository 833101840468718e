package ast

import (
	"strings"

	"github.com/gyre-lang/gyre/internal/token"
)

// Var declares a new variable in the current scope: var name = value.
type Var struct {
	Tok   token.Token
	Name  string
	Value Expr
}

func (v *Var) stmtNode()          {}
func (v *Var) Token() token.Token { return v.Tok }
func (v *Var) String() string     { return "var " + v.Name + " = " + v.Value.String() }

// Assign updates an already declared variable: name = value.
type Assign struct {
	Tok   token.Token
	Name  string
	Value Expr
}

func (a *Assign) stmtNode()          {}
func (a *Assign) Token() token.Token { return a.Tok }
func (a *Assign) String() string     { return a.Name + " = " + a.Value.String() }

// For iterates a loop variable over a range [lower, step, upper], running the
// body once per value. The loop variable lives in a scope of its own.
type For struct {
	Tok   token.Token
	Name  string
	Lower Expr
	Step  Expr
	Upper Expr
	Body  []Stmt
}

func (f *For) stmtNode()          {}
func (f *For) Token() token.Token { return f.Tok }
func (f *For) String() string {
	var b strings.Builder
	b.WriteString("for ")
	b.WriteString(f.Name)
	b.WriteString(" in [")
	b.WriteString(f.Lower.String())
	b.WriteString(", ")
	b.WriteString(f.Step.String())
	b.WriteString(", ")
	b.WriteString(f.Upper.String())
	b.WriteString("] { ")
	for i, stmt := range f.Body {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(stmt.String())
	}
	b.WriteString(" }")
	return b.String()
}

// ExprStmt is a bare expression used as a statement, e.g. a drawing call.
type ExprStmt struct {
	Expr Expr
}

func (e *ExprStmt) stmtNode()          {}
func (e *ExprStmt) Token() token.Token { return e.Expr.Token() }
func (e *ExprStmt) String() string     { return e.Expr.String() }
