package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Punctuation.
	LEFTPAREN
	RIGHTPAREN

	// Operators.
	PLUS
	MINUS
	STAR
	SLASH

	// Literals.
	NUMBER
)

// EOFLexeme is the lexeme carried by the EOF token.
const EOFLexeme = "EOF"

// Punctuation maps each punctuation character to its kind.
var Punctuation = map[rune]Kind{
	'(': LEFTPAREN,
	')': RIGHTPAREN,
}

// Operators maps each operator character to its kind.
var Operators = map[rune]Kind{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
}

func (k Kind) IsOperator() bool {
	return k == PLUS || k == MINUS || k == STAR || k == SLASH
}

// Position is a zero-based line and column in the source.
// Columns count characters, not bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Line, p.Column)
}

type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("<%v, '%s', %v>", t.Kind, t.Lexeme, t.Pos)
}
