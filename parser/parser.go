package parser

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/takoeight0821/ec1/ast"
	"github.com/takoeight0821/ec1/token"
)

// DefaultMaxDepth bounds the nesting of parenthesized groups.
const DefaultMaxDepth = 10000

var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrInvalidOperator   = errors.New("invalid operator")
	ErrMissingRightParen = errors.New("missing closing parenthesis")
	ErrExtraTokens       = errors.New("extra tokens after expression")
	ErrInvalidNumber     = errors.New("invalid number literal")
	ErrTooDeep           = errors.New("expression nested too deeply")
)

// SyntaxError reports the first grammar violation found by the Parser.
// Err is one of the Err* sentinels.
type SyntaxError struct {
	Err      error
	Expected string
	Found    token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: expected %s, found %v `%s` at line %d, column %d",
		e.Err, e.Expected, e.Found.Kind, e.Found.Lexeme, e.Found.Pos.Line, e.Found.Pos.Column)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(err error, found token.Token, expected string) *SyntaxError {
	return &SyntaxError{Err: err, Expected: expected, Found: found}
}

type Parser struct {
	tokens   []token.Token
	current  int
	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth limits how deeply parenthesized groups may nest.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

func NewParser(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses tokens as a single expression.
func Parse(tokens []token.Token, opts ...Option) (ast.Node, error) {
	return NewParser(tokens, opts...).ParseExpr()
}

// ParseExpr parses one expression followed by EOF.
// It stops at the first error and never returns a partial tree.
func (p *Parser) ParseExpr() (ast.Node, error) {
	p.current = 0
	p.depth = 0

	node, err := p.expr()
	if err != nil {
		return nil, err
	}

	if next := p.advance(); next.Kind != token.EOF {
		return nil, syntaxError(ErrExtraTokens, next, token.EOF.String())
	}

	return node, nil
}

// expr = NUMBER | "(" expr operator expr ")" ;
func (p *Parser) expr() (ast.Node, error) {
	t := p.advance()
	switch t.Kind {
	case token.NUMBER:
		return p.literal(t)
	case token.LEFTPAREN:
		return p.binary(t)
	default:
		return nil, syntaxError(ErrUnexpectedToken, t, "NUMBER or LEFTPAREN")
	}
}

func (p *Parser) literal(t token.Token) (ast.Node, error) {
	value, ok := new(big.Int).SetString(t.Lexeme, 10)
	if !ok {
		return nil, syntaxError(ErrInvalidNumber, t, "decimal digits")
	}

	return &ast.Literal{Value: value, Token: t}, nil
}

func (p *Parser) binary(open token.Token) (ast.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, syntaxError(ErrTooDeep, open, fmt.Sprintf("at most %d nested groups", p.maxDepth))
	}

	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	op, opToken, err := p.operator()
	if err != nil {
		return nil, err
	}
	right, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTPAREN, ErrMissingRightParen); err != nil {
		return nil, err
	}

	return &ast.Binary{Op: op, Left: left, Right: right, Token: opToken}, nil
}

// operator = "+" | "-" | "*" | "/" ;
func (p *Parser) operator() (ast.Operator, token.Token, error) {
	t := p.advance()
	if op, ok := ast.OperatorOf(t.Kind); ok {
		return op, t, nil
	}

	return 0, t, syntaxError(ErrInvalidOperator, t, "PLUS, MINUS, STAR or SLASH")
}

func (p Parser) peek() token.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}

	// Token slices built by hand may lack the trailing EOF.
	eof := token.Token{Kind: token.EOF, Lexeme: token.EOFLexeme}
	if len(p.tokens) > 0 {
		eof.Pos = p.tokens[len(p.tokens)-1].Pos
	}

	return eof
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.IsAtEnd() {
		p.current++
	}

	return t
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) consume(kind token.Kind, err error) (token.Token, error) {
	t := p.advance()
	if t.Kind != kind {
		return t, syntaxError(err, t, kind.String())
	}

	return t, nil
}
