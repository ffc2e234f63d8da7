package ast

import (
	"fmt"
	"math/big"

	"github.com/takoeight0821/ec1/token"
)

// Node is an expression. The only implementations are *Literal and *Binary.
type Node interface {
	fmt.Stringer
	Base() token.Token
	node()
}

// Operator is the operator of a Binary node.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// OperatorOf returns the operator denoted by an operator token kind.
func OperatorOf(kind token.Kind) (Operator, bool) {
	switch kind {
	case token.PLUS:
		return Add, true
	case token.MINUS:
		return Sub, true
	case token.STAR:
		return Mul, true
	case token.SLASH:
		return Div, true
	default:
		return 0, false
	}
}

func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	panic(fmt.Sprintf("invalid operator %d", int(op)))
}

func (op Operator) String() string {
	return op.Symbol()
}

type Literal struct {
	Value *big.Int
	token.Token
}

// String renders the literal in decimal; leading zeros of the source lexeme are dropped.
func (l Literal) String() string {
	return l.Value.String()
}

func (l *Literal) Base() token.Token {
	return l.Token
}

func (*Literal) node() {}

var _ Node = &Literal{}

type Binary struct {
	Op    Operator
	Left  Node
	Right Node
	token.Token
}

// String renders the expression in fully parenthesized infix form.
func (b Binary) String() string {
	return fmt.Sprintf("(%v %s %v)", b.Left, b.Op.Symbol(), b.Right)
}

// Base returns the operator token.
func (b *Binary) Base() token.Token {
	return b.Token
}

func (*Binary) node() {}

var _ Node = &Binary{}

// NewLiteral builds a Literal without source position.
func NewLiteral(value int64) *Literal {
	return &Literal{Value: big.NewInt(value), Token: token.Token{Kind: token.NUMBER, Lexeme: fmt.Sprint(value)}}
}

// NewBinary builds a Binary without source position.
func NewBinary(op Operator, left, right Node) *Binary {
	kinds := [...]token.Kind{Add: token.PLUS, Sub: token.MINUS, Mul: token.STAR, Div: token.SLASH}

	return &Binary{Op: op, Left: left, Right: right, Token: token.Token{Kind: kinds[op], Lexeme: op.Symbol()}}
}

// Equal reports whether a and b have the same shape, operators and values.
// Source positions are ignored.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Value.Cmp(b.Value) == 0
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}

	return false
}
