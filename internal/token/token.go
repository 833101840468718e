// Package token defines the tokens produced when lexing gyre source code.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed column number
}

// LineNumber returns the 1-indexed line number for this position.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type     Type
	Literal  string
	Position Position
}

// Token types
const (
	ASSIGN   Type = "="
	ASTERISK Type = "*"
	COLON    Type = ":"
	COMMA    Type = ","
	EOF      Type = "EOF"
	FALSE    Type = "FALSE"
	FOR      Type = "FOR"
	IDENT    Type = "IDENT"
	ILLEGAL  Type = "ILLEGAL"
	IN       Type = "IN"
	LBRACE   Type = "{"
	LBRACKET Type = "["
	LPAREN   Type = "("
	MINUS    Type = "-"
	NEWLINE  Type = "NEWLINE"
	NUMBER   Type = "NUMBER"
	PLUS     Type = "+"
	RBRACE   Type = "}"
	RBRACKET Type = "]"
	RPAREN   Type = ")"
	SLASH    Type = "/"
	STRING   Type = "STRING"
	TRUE     Type = "TRUE"
	VAR      Type = "VAR"
)

var keywords = map[string]Type{
	"var":   VAR,
	"for":   FOR,
	"in":    IN,
	"true":  TRUE,
	"false": FALSE,
}

// LookupIdentifier returns the keyword type for the given identifier, or
// IDENT if it is not a keyword.
func LookupIdentifier(identifier string) Type {
	if t, ok := keywords[identifier]; ok {
		return t
	}
	return IDENT
}
