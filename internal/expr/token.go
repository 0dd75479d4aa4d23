package expr

import "fmt"

// TokenType classifies a lexical unit of an expression.
type TokenType int

const (
	TokenIdentifier TokenType = iota
	TokenNumber
	TokenString
	TokenOperator
	TokenFunction
	TokenColumn
	TokenParen
	TokenComma
)

var tokenTypeNames = map[TokenType]string{
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenOperator:   "operator",
	TokenFunction:   "function",
	TokenColumn:     "column",
	TokenParen:      "parenthesis",
	TokenComma:      "comma",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one classified lexical unit. Pos is the byte offset of the
// token's start in the source text, used for error messages and for
// aligning editor hints.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d)", t.Type, t.Value, t.Pos)
}
