package expr

import (
	"regexp"
	"unicode/utf8"
)

// One ordered alternation applied repeatedly from the scan position.
// Group order matters: quoted strings must win over operator runs, and
// bracketed column refs over anything else starting with '['.
var tokenPattern = regexp.MustCompile(`^(?:` +
	`(\s+)` + // 1: whitespace, skipped
	`|([a-zA-Z_][a-zA-Z0-9_]*)` + // 2: identifier
	`|(\d+(?:\.\d+)?)` + // 3: number
	`|('[^']*'|"[^"]*")` + // 4: quoted string
	`|([-+*/=<>!&|]+)` + // 5: operator run
	`|([()])` + // 6: parenthesis
	`|(,)` + // 7: comma
	`|(\[[^\]]+\])` + // 8: column reference
	`)`)

// Tokenize converts source text into an ordered token sequence.
// It is total: unrecognized characters are skipped and never reported,
// so any input produces a (possibly empty) token slice. Malformed
// constructs surface later, at parse time.
func Tokenize(text string) []Token {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		m := tokenPattern.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
			continue
		}
		group := 0
		for g := 1; g <= 8; g++ {
			if m[2*g] >= 0 {
				group = g
				break
			}
		}
		value := text[pos+m[2*group] : pos+m[2*group+1]]
		start := pos
		pos += m[1]

		switch group {
		case 1: // whitespace
			continue
		case 2:
			typ := TokenIdentifier
			if _, ok := FunctionByName(value); ok {
				typ = TokenFunction
			}
			tokens = append(tokens, Token{Type: typ, Value: value, Pos: start})
		case 3:
			tokens = append(tokens, Token{Type: TokenNumber, Value: value, Pos: start})
		case 4:
			tokens = append(tokens, Token{Type: TokenString, Value: value[1 : len(value)-1], Pos: start})
		case 5:
			tokens = append(tokens, Token{Type: TokenOperator, Value: value, Pos: start})
		case 6:
			tokens = append(tokens, Token{Type: TokenParen, Value: value, Pos: start})
		case 7:
			tokens = append(tokens, Token{Type: TokenComma, Value: value, Pos: start})
		case 8:
			tokens = append(tokens, Token{Type: TokenColumn, Value: value[1 : len(value)-1], Pos: start})
		}
	}
	return tokens
}
