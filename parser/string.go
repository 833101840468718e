package parser

import (
	"strings"

	"github.com/gyre-lang/gyre/ast"
	"github.com/gyre-lang/gyre/internal/lexer"
	"github.com/gyre-lang/gyre/internal/token"
)

// parseString turns a STRING token into an ast.String. The lexer leaves
// escape sequences untouched, so this is where \(expr) interpolation is
// split into parts and the remaining escapes are decoded.
func (p *Parser) parseString() (ast.Expr, error) {
	tok := p.curToken
	p.nextToken()

	raw := tok.Literal
	var parts []ast.Expr
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			parts = append(parts, &ast.StringText{Tok: tok, Value: text.String()})
			text.Reset()
		}
	}

	i := 0
	interpolated := false
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			text.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return nil, p.syntaxErrorf("unterminated escape sequence in string")
		}
		switch raw[i+1] {
		case '\\':
			text.WriteByte('\\')
			i += 2
		case '"':
			text.WriteByte('"')
			i += 2
		case 'n':
			text.WriteByte('\n')
			i += 2
		case 't':
			text.WriteByte('\t')
			i += 2
		case '(':
			inner, rest, err := p.splitInterpolation(raw[i+2:])
			if err != nil {
				return nil, err
			}
			expr, err := p.parseInterpolatedExpr(inner)
			if err != nil {
				return nil, err
			}
			interpolated = true
			flushText()
			parts = append(parts, expr)
			i = len(raw) - len(rest)
		default:
			return nil, p.syntaxErrorf("unknown escape sequence \\%c in string", raw[i+1])
		}
	}

	if !interpolated {
		return &ast.String{Tok: tok, Value: text.String()}, nil
	}
	flushText()
	return &ast.String{Tok: tok, Parts: parts}, nil
}

// splitInterpolation takes the text immediately after "\(" and returns the
// expression source up to the matching ")" plus whatever follows it.
func (p *Parser) splitInterpolation(s string) (inner, rest string, err error) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", p.syntaxErrorf("unterminated \\( interpolation in string")
}

func (p *Parser) parseInterpolatedExpr(src string) (ast.Expr, error) {
	sub := New(lexer.New(src))
	expr, err := sub.parseExpression()
	if err != nil {
		return nil, err
	}
	if sub.curToken.Type != token.EOF {
		return nil, p.syntaxErrorf("unexpected %q in string interpolation",
			sub.curToken.Literal)
	}
	return expr, nil
}
