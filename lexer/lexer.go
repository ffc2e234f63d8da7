package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/takoeight0821/ec1/token"
)

// InvalidCharacter is the message of every Error produced for a character outside the language.
const InvalidCharacter = "invalid character"

// Lex scans source and returns the tokens together with all lexical errors joined into one.
// The returned error is nil if the source is lexically valid.
func Lex(source string) ([]token.Token, error) {
	tokens, errs := Scan(strings.NewReader(source))

	return tokens, Join(errs)
}

// Scan reads r line by line and converts it into tokens.
// Invalid characters do not stop scanning; each one is reported as an Error.
// The token slice always ends with exactly one EOF token.
func Scan(r io.Reader) ([]token.Token, []Error) {
	lexer := lexer{
		tokens: []token.Token{},
		errors: []Error{},
	}

	reader := bufio.NewReader(r)
	for lineIndex := 0; ; lineIndex++ {
		line, err := reader.ReadString('\n')
		if line != "" {
			lexer.line = lineIndex
			lexer.scanLine([]rune(line))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lexer.errors = append(lexer.errors, Error{Pos: lexer.pos(), Message: err.Error()})
			}

			break
		}
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: token.EOFLexeme, Pos: lexer.pos()})

	return lexer.tokens, lexer.errors
}

type lexer struct {
	tokens []token.Token
	errors []Error

	line   int // index of the line being scanned
	column int // index of the current character in that line
}

func (l lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

func (l *lexer) addToken(kind token.Kind, lexeme string, column int) {
	l.tokens = append(l.tokens, token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Pos:    token.Position{Line: l.line, Column: column},
	})
}

func (l *lexer) scanLine(line []rune) {
	l.column = 0
	for l.column < len(line) {
		char := line[l.column]
		if isDigit(char) {
			l.number(line)

			continue
		}

		switch char {
		case ' ', '\n':
			// ignore whitespace
		default:
			if k, ok := token.Punctuation[char]; ok {
				l.addToken(k, string(char), l.column)
			} else if k, ok := token.Operators[char]; ok {
				l.addToken(k, string(char), l.column)
			} else {
				l.errors = append(l.errors, Error{Pos: l.pos(), Char: char, Message: InvalidCharacter})
			}
		}
		l.column++
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// number consumes the maximal run of digits starting at the current column.
func (l *lexer) number(line []rune) {
	start := l.column
	for l.column < len(line) && isDigit(line[l.column]) {
		l.column++
	}
	l.addToken(token.NUMBER, string(line[start:l.column]), start)
}

// Error is a lexical error. Scanning continues after it is recorded.
type Error struct {
	Pos     token.Position
	Char    rune
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("LexicalError: %s. Line %d and column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Join combines errs with errors.Join, keeping their order.
func Join(errs []Error) error {
	if len(errs) == 0 {
		return nil
	}

	joined := make([]error, len(errs))
	for i, err := range errs {
		joined[i] = err
	}

	return errors.Join(joined...)
}
