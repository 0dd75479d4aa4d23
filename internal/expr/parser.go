package expr

import "fmt"

// ParseError reports a grammatical violation with the offending token
// and its byte offset in the source text.
type ParseError struct {
	Message string
	Token   string
	Pos     int
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %q at offset %d", e.Message, e.Token, e.Pos)
}

// Parse tokenizes text and produces a single parse tree for the whole
// expression. Malformed input returns a *ParseError; there is no
// recovery, the caller discards the attempt.
func Parse(text string) (Node, error) {
	p := &parser{tokens: Tokenize(text)}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &ParseError{Message: "unexpected token", Token: tok.Value, Pos: tok.Pos}
	}
	return node, nil
}

// parser is a predictive recursive-descent parser: a single cursor into
// the token slice, advanced only on exact match, no backtracking.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) expect(typ TokenType, value string) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, &ParseError{Message: "unexpected end of expression"}
	}
	if tok.Type != typ || (value != "" && tok.Value != value) {
		return Token{}, &ParseError{Message: fmt.Sprintf("expected %q, found", value), Token: tok.Value, Pos: tok.Pos}
	}
	p.pos++
	return tok, nil
}

// Precedence tiers, low to high. Each tier parses the next-higher tier,
// then left-folds while its own operator set matches.

func (p *parser) parseExpression() (Node, error) {
	return p.binary(p.parseAnd, func(t Token) bool {
		return t.Type == TokenOperator && t.Value == "||"
	})
}

func (p *parser) parseAnd() (Node, error) {
	return p.binary(p.parseComparison, func(t Token) bool {
		return t.Type == TokenOperator && t.Value == "&&"
	})
}

var comparisonOps = map[string]bool{
	"==": true, "!=": true, ">": true, "<": true, ">=": true, "<=": true,
}

func (p *parser) parseComparison() (Node, error) {
	return p.binary(p.parseAdditive, func(t Token) bool {
		if t.Type == TokenOperator && comparisonOps[t.Value] {
			return true
		}
		// IN tokenizes as an identifier but binds like a comparison.
		return t.Type == TokenIdentifier && t.Value == "IN"
	})
}

func (p *parser) parseAdditive() (Node, error) {
	return p.binary(p.parseMultiplicative, func(t Token) bool {
		return t.Type == TokenOperator && (t.Value == "+" || t.Value == "-")
	})
}

func (p *parser) parseMultiplicative() (Node, error) {
	return p.binary(p.parsePrimary, func(t Token) bool {
		return t.Type == TokenOperator && (t.Value == "*" || t.Value == "/")
	})
}

func (p *parser) binary(next func() (Node, error), match func(Token) bool) (Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !match(tok) {
			return left, nil
		}
		p.pos++
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &Operation{Operator: tok.Value, Left: left, Right: right}
	}
}

func (p *parser) parsePrimary() (Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &ParseError{Message: "unexpected end of expression"}
	}
	switch tok.Type {
	case TokenNumber:
		p.pos++
		return &Literal{Kind: LiteralNumber, Value: tok.Value}, nil
	case TokenString:
		p.pos++
		return &Literal{Kind: LiteralString, Value: tok.Value}, nil
	case TokenColumn:
		p.pos++
		return &ColumnRef{Name: tok.Value}, nil
	case TokenFunction:
		p.pos++
		return p.parseCall(tok.Value)
	case TokenParen:
		if tok.Value == "(" {
			p.pos++
			inner, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenParen, ")"); err != nil {
				return nil, err
			}
			return inner, nil
		}
	}
	return nil, &ParseError{Message: "unexpected token", Token: tok.Value, Pos: tok.Pos}
}

// parseCall parses the argument list of a function call. The name has
// already been consumed. Zero arguments is legal; arity is left to a
// later validation pass.
func (p *parser) parseCall(name string) (Node, error) {
	if _, err := p.expect(TokenParen, "("); err != nil {
		return nil, err
	}
	call := &FunctionCall{Name: name}

	if tok, ok := p.peek(); ok && tok.Type == TokenParen && tok.Value == ")" {
		p.pos++
		return call, nil
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		tok, ok := p.peek()
		if !ok {
			return nil, &ParseError{Message: "unexpected end of expression"}
		}
		switch {
		case tok.Type == TokenComma:
			p.pos++
		case tok.Type == TokenParen && tok.Value == ")":
			p.pos++
			return call, nil
		default:
			return nil, &ParseError{Message: "expected ',' or ')', found", Token: tok.Value, Pos: tok.Pos}
		}
	}
}
