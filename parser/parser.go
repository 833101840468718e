// Package parser is used to generate the abstract syntax tree (AST) for a
// gyre program.
//
// A parser is created by calling New() with a lexer as input. The parser
// should then be used only once, by calling parser.Parse() to produce the
// AST. Syntax errors do not stop parsing: the parser skips to the next
// statement and reports all errors it found, aggregated into one error.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gyre-lang/gyre/ast"
	"github.com/gyre-lang/gyre/internal/lexer"
	"github.com/gyre-lang/gyre/internal/token"
)

// Parse the provided input as gyre source code and return the AST. This is a
// shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(input string) (*ast.Program, error) {
	return New(lexer.New(input)).Parse()
}

// Parser produces an ast.Program from a token stream.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errs      *multierror.Error
}

// New creates a Parser that reads from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse consumes the whole token stream and returns the program. The
// returned error aggregates every syntax error encountered.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for p.curToken.Type != token.EOF {
		if p.curToken.Type == token.NEWLINE {
			p.nextToken()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			p.errs = multierror.Append(p.errs, err)
			p.synchronize()
			continue
		}
		program.Stmts = append(program.Stmts, stmt)
		if err := p.expectStatementEnd(); err != nil {
			p.errs = multierror.Append(p.errs, err)
			p.synchronize()
		}
	}
	return program, p.errs.ErrorOrNil()
}

// synchronize skips tokens until the start of the next statement so that a
// single syntax error does not hide every error after it.
func (p *Parser) synchronize() {
	for p.curToken.Type != token.NEWLINE && p.curToken.Type != token.EOF {
		p.nextToken()
	}
}

func (p *Parser) expectStatementEnd() error {
	switch p.curToken.Type {
	case token.NEWLINE:
		p.nextToken()
		return nil
	case token.EOF, token.RBRACE:
		return nil
	default:
		return p.syntaxErrorf("unexpected %q after statement", p.curToken.Literal)
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) syntaxErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("syntax error at line %d: %s",
		p.curToken.Position.LineNumber(), fmt.Sprintf(format, args...))
}

func (p *Parser) expect(t token.Type) error {
	if p.curToken.Type != t {
		return p.syntaxErrorf("expected %q but found %q", string(t), p.curToken.Literal)
	}
	p.nextToken()
	return nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.curToken.Type {
	case token.VAR:
		return p.parseVar()
	case token.FOR:
		return p.parseFor()
	case token.IDENT:
		if p.peekToken.Type == token.ASSIGN {
			return p.parseAssign()
		}
	case token.ILLEGAL:
		return nil, p.syntaxErrorf("%s", p.curToken.Literal)
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) parseVar() (ast.Stmt, error) {
	tok := p.curToken
	p.nextToken()
	if p.curToken.Type != token.IDENT {
		return nil, p.syntaxErrorf("expected variable name after 'var' but found %q",
			p.curToken.Literal)
	}
	name := p.curToken.Literal
	if strings.HasPrefix(name, "_") {
		return nil, p.syntaxErrorf(
			"variables starting with '_' cannot be assigned to")
	}
	p.nextToken()
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Var{Tok: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseAssign() (ast.Stmt, error) {
	tok := p.curToken
	name := p.curToken.Literal
	if strings.HasPrefix(name, "_") {
		return nil, p.syntaxErrorf(
			"variables starting with '_' cannot be assigned to")
	}
	p.nextToken() // name
	p.nextToken() // '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Tok: tok, Name: name, Value: value}, nil
}

// parseFor parses: for i in [lower, step, upper] { body }
func (p *Parser) parseFor() (ast.Stmt, error) {
	tok := p.curToken
	p.nextToken()
	if p.curToken.Type != token.IDENT {
		return nil, p.syntaxErrorf("expected loop variable name but found %q",
			p.curToken.Literal)
	}
	name := p.curToken.Literal
	p.nextToken()
	if err := p.expect(token.IN); err != nil {
		return nil, err
	}
	if err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	lower, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	step, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	upper, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for {
		if p.curToken.Type == token.NEWLINE {
			p.nextToken()
			continue
		}
		if p.curToken.Type == token.RBRACE {
			p.nextToken()
			break
		}
		if p.curToken.Type == token.EOF {
			return nil, p.syntaxErrorf("unexpected end of input inside loop body")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		if p.curToken.Type == token.NEWLINE {
			p.nextToken()
		} else if p.curToken.Type != token.RBRACE {
			return nil, p.syntaxErrorf("unexpected %q in loop body", p.curToken.Literal)
		}
	}
	return &ast.For{Tok: tok, Name: name, Lower: lower, Step: step, Upper: upper, Body: body}, nil
}

// parseExpression parses additive expressions, the lowest precedence level.
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.PLUS || p.curToken.Type == token.MINUS {
		tok := p.curToken
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{Tok: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.ASTERISK || p.curToken.Type == token.SLASH {
		tok := p.curToken
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Infix{Tok: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.curToken.Type == token.MINUS {
		tok := p.curToken
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Prefix{Tok: tok, Operator: "-", Right: right}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.curToken.Type {
	case token.NUMBER:
		tok := p.curToken
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.syntaxErrorf("invalid number %q", tok.Literal)
		}
		p.nextToken()
		return &ast.Number{Tok: tok, Value: value}, nil
	case token.TRUE, token.FALSE:
		tok := p.curToken
		p.nextToken()
		return &ast.Bool{Tok: tok, Value: tok.Type == token.TRUE}, nil
	case token.STRING:
		return p.parseString()
	case token.IDENT:
		tok := p.curToken
		if p.peekToken.Type == token.LPAREN {
			return p.parseCall()
		}
		p.nextToken()
		return &ast.Ident{Tok: tok, Name: tok.Literal}, nil
	case token.LPAREN:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.ILLEGAL:
		return nil, p.syntaxErrorf("%s", p.curToken.Literal)
	default:
		return nil, p.syntaxErrorf("unexpected %q in expression", p.curToken.Literal)
	}
}

// parseCall parses a keyword-argument call: name(param: expr, param: expr).
func (p *Parser) parseCall() (ast.Expr, error) {
	tok := p.curToken
	name := p.curToken.Literal
	p.nextToken() // name
	p.nextToken() // '('

	call := &ast.Call{Tok: tok, Name: name}
	if p.curToken.Type == token.RPAREN {
		p.nextToken()
		return call, nil
	}
	for {
		if p.curToken.Type != token.IDENT {
			return nil, p.syntaxErrorf("expected parameter name in call to %q but found %q",
				name, p.curToken.Literal)
		}
		paramName := p.curToken.Literal
		p.nextToken()
		if err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, ast.Argument{Name: paramName, Value: value})

		if p.curToken.Type == token.COMMA {
			p.nextToken()
			continue
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return call, nil
	}
}
