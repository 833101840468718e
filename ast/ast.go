// Package ast defines the abstract syntax tree representation of gyre code.
package ast

import (
	"github.com/gyre-lang/gyre/internal/token"
)

// Node represents a portion of the syntax tree.
type Node interface {
	// Token returns the token the node starts at.
	Token() token.Token

	// String returns a human friendly representation of the node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements appear at the top level of a
// program or inside a loop body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value and
// may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node: an ordered list of statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Token() token.Token {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Token()
	}
	return token.Token{}
}

func (p *Program) String() string {
	var out string
	for i, stmt := range p.Stmts {
		if i > 0 {
			out += "\n"
		}
		out += stmt.String()
	}
	return out
}
