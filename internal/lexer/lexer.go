// Package lexer turns gyre source code into a stream of tokens.
//
// The language is line oriented: newlines terminate statements, so the lexer
// emits NEWLINE tokens rather than swallowing them. String literals are
// returned raw (escape sequences intact) because interpolation markers of the
// form \(...) are split out later by the parser.
package lexer

import (
	"fmt"

	"github.com/gyre-lang/gyre/internal/token"
)

// Lexer tokenizes an input string. Create one with New and call NextToken
// until an EOF token is returned.
type Lexer struct {
	input        string
	position     int  // current position (points to current char)
	readPosition int  // current reading position (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{input: input, column: -1}
	l.readChar()
	return l
}

// NextToken returns the next token in the input.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.skipComment()

	pos := token.Position{Line: l.line, Column: l.column}

	var tok token.Token
	switch l.ch {
	case '=':
		tok = l.newToken(token.ASSIGN, pos)
	case '+':
		tok = l.newToken(token.PLUS, pos)
	case '-':
		tok = l.newToken(token.MINUS, pos)
	case '*':
		tok = l.newToken(token.ASTERISK, pos)
	case '/':
		tok = l.newToken(token.SLASH, pos)
	case ':':
		tok = l.newToken(token.COLON, pos)
	case ',':
		tok = l.newToken(token.COMMA, pos)
	case '(':
		tok = l.newToken(token.LPAREN, pos)
	case ')':
		tok = l.newToken(token.RPAREN, pos)
	case '[':
		tok = l.newToken(token.LBRACKET, pos)
	case ']':
		tok = l.newToken(token.RBRACKET, pos)
	case '{':
		tok = l.newToken(token.LBRACE, pos)
	case '}':
		tok = l.newToken(token.RBRACE, pos)
	case '\n':
		tok = token.Token{Type: token.NEWLINE, Literal: "\n", Position: pos}
	case '"':
		literal, ok := l.readString()
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: literal, Position: pos}
		}
		return token.Token{Type: token.STRING, Literal: literal, Position: pos}
	case 0:
		return token.Token{Type: token.EOF, Literal: "", Position: pos}
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return token.Token{
				Type:     token.LookupIdentifier(literal),
				Literal:  literal,
				Position: pos,
			}
		}
		if isDigit(l.ch) {
			return token.Token{Type: token.NUMBER, Literal: l.readNumber(), Position: pos}
		}
		tok = token.Token{
			Type:     token.ILLEGAL,
			Literal:  fmt.Sprintf("unexpected character %q", string(l.ch)),
			Position: pos,
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(t token.Type, pos token.Position) token.Token {
	return token.Token{Type: t, Literal: string(l.ch), Position: pos}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = -1
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		l.skipWhitespace()
	}
}

// readString reads a double-quoted string literal, leaving escape sequences
// untouched. A backslash protects the following character, so escaped quotes
// and interpolation markers pass through to the parser.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1
	for {
		l.readChar()
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return "unterminated string literal", false
			}
			continue
		}
		if l.ch == '"' {
			break
		}
		if l.ch == 0 || l.ch == '\n' {
			return "unterminated string literal", false
		}
	}
	literal := l.input[start:l.position]
	l.readChar() // consume the closing quote
	return literal, true
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
