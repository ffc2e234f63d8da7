// Package eval computes the integer value of an expression tree.
package eval

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/takoeight0821/ec1/ast"
	"github.com/takoeight0821/ec1/token"
)

// Division selects how "/" rounds a non-exact quotient.
type Division int

const (
	// Floor rounds toward negative infinity.
	Floor Division = iota
	// Truncate rounds toward zero.
	Truncate
)

func (d Division) String() string {
	switch d {
	case Floor:
		return "floor"
	case Truncate:
		return "truncate"
	default:
		return fmt.Sprintf("Division(%d)", int(d))
	}
}

// ParseDivision converts a division mode name ("floor" or "truncate").
func ParseDivision(name string) (Division, error) {
	switch name {
	case "floor":
		return Floor, nil
	case "truncate":
		return Truncate, nil
	default:
		return Floor, fmt.Errorf("unknown division mode %q", name)
	}
}

var ErrDivisionByZero = errors.New("division by zero")

// Error is an evaluation failure located at the operator that caused it.
type Error struct {
	Where token.Token
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("at line %d, column %d: `%s`, %v", e.Where.Pos.Line, e.Where.Pos.Column, e.Where.Lexeme, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Evaluator evaluates expression trees.
type Evaluator struct {
	division Division
}

type Option func(*Evaluator)

func WithDivision(d Division) Option {
	return func(ev *Evaluator) {
		ev.division = d
	}
}

// NewEvaluator creates a new Evaluator. Division floors unless configured otherwise.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{division: Floor}
	for _, opt := range opts {
		opt(ev)
	}

	return ev
}

// Eval evaluates node with floor division.
func Eval(node ast.Node) (*big.Int, error) {
	return NewEvaluator().Eval(node)
}

// Eval returns the value of node. The left operand is evaluated before the right one.
func (ev *Evaluator) Eval(node ast.Node) (*big.Int, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return new(big.Int).Set(n.Value), nil
	case *ast.Binary:
		left, err := ev.Eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := ev.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return ev.apply(n, left, right)
	default:
		return nil, fmt.Errorf("unexpected node: %v", n)
	}
}

func (ev *Evaluator) apply(n *ast.Binary, left, right *big.Int) (*big.Int, error) {
	switch n.Op {
	case ast.Add:
		return left.Add(left, right), nil
	case ast.Sub:
		return left.Sub(left, right), nil
	case ast.Mul:
		return left.Mul(left, right), nil
	case ast.Div:
		if right.Sign() == 0 {
			return nil, &Error{Where: n.Base(), Err: ErrDivisionByZero}
		}
		return ev.divide(left, right), nil
	}

	return nil, &Error{Where: n.Base(), Err: fmt.Errorf("invalid operator %d", int(n.Op))}
}

func (ev *Evaluator) divide(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if ev.division == Floor && r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}

	return q
}
