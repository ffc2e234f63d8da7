package parser_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/ec1/ast"
	"github.com/takoeight0821/ec1/lexer"
	"github.com/takoeight0821/ec1/parser"
	"github.com/takoeight0821/ec1/token"
	"github.com/takoeight0821/ec1/utils"
)

var sentinels = map[string]error{
	parser.ErrUnexpectedToken.Error():   parser.ErrUnexpectedToken,
	parser.ErrInvalidOperator.Error():   parser.ErrInvalidOperator,
	parser.ErrMissingRightParen.Error(): parser.ErrMissingRightParen,
	parser.ErrExtraTokens.Error():       parser.ErrExtraTokens,
	parser.ErrInvalidNumber.Error():     parser.ErrInvalidNumber,
	parser.ErrTooDeep.Error():           parser.ErrTooDeep,
}

func parse(source string) (ast.Node, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("unexpected lexical error: %w", err)
	}

	return parser.Parse(tokens)
}

func TestParseFromTestData(t *testing.T) {
	t.Parallel()
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)
	if len(testcases) == 0 {
		t.Fatal("no test cases")
	}

	for _, testcase := range testcases {
		node, err := parse(testcase.Input)

		if expected, ok := testcase.Expected["parse_error"]; ok {
			sentinel, known := sentinels[expected]
			if !known {
				t.Errorf("%s: unknown parse error %q", testcase.Label, expected)
				continue
			}
			if !errors.Is(err, sentinel) {
				t.Errorf("%s: expected %q, got %v", testcase.Label, expected, err)
			}
			if node != nil {
				t.Errorf("%s: expected no tree, got %v", testcase.Label, node)
			}
			continue
		}

		if err != nil {
			t.Errorf("%s returned error: %v", testcase.Label, err)
			continue
		}
		if diff := cmp.Diff(testcase.Expected["infix"], node.String()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", testcase.Label, diff)
		}
	}
}

func BenchmarkFromTestData(b *testing.B) {
	s, err := os.ReadFile("../testdata/testcase.yaml")
	if err != nil {
		panic(err)
	}
	testcases := utils.ReadTestData(s)

	for _, testcase := range testcases {
		b.Run(testcase.Label, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = parse(testcase.Input)
			}
		})
	}
}

func TestTreeShape(t *testing.T) {
	t.Parallel()

	node, err := parse("(33 + (912 * 11))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := ast.NewBinary(ast.Add, ast.NewLiteral(33), ast.NewBinary(ast.Mul, ast.NewLiteral(912), ast.NewLiteral(11)))
	if !ast.Equal(expected, node) {
		t.Errorf("Parse returned %v, expected %v", node, expected)
	}

	binary, ok := node.(*ast.Binary)
	if !ok {
		t.Fatalf("expected *ast.Binary, got %T", node)
	}
	if binary.Base().Pos != (token.Position{Line: 0, Column: 4}) {
		t.Errorf("operator position is %v", binary.Base().Pos)
	}
}

func TestSyntaxErrorFields(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		sentinel error
		found    token.Token
	}{
		{"(1 + 2", parser.ErrMissingRightParen, token.Token{Kind: token.EOF, Lexeme: "EOF", Pos: token.Position{Line: 0, Column: 6}}},
		{"1 + 2)", parser.ErrExtraTokens, token.Token{Kind: token.PLUS, Lexeme: "+", Pos: token.Position{Line: 0, Column: 2}}},
		{"()", parser.ErrUnexpectedToken, token.Token{Kind: token.RIGHTPAREN, Lexeme: ")", Pos: token.Position{Line: 0, Column: 1}}},
		{"(+ 1 2)", parser.ErrUnexpectedToken, token.Token{Kind: token.PLUS, Lexeme: "+", Pos: token.Position{Line: 0, Column: 1}}},
		{"1 2", parser.ErrExtraTokens, token.Token{Kind: token.NUMBER, Lexeme: "2", Pos: token.Position{Line: 0, Column: 2}}},
		{"(1\n2 3)", parser.ErrInvalidOperator, token.Token{Kind: token.NUMBER, Lexeme: "2", Pos: token.Position{Line: 1, Column: 0}}},
	}

	for _, testcase := range testcases {
		_, err := parse(testcase.input)

		var syntaxErr *parser.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%q: expected *parser.SyntaxError, got %v", testcase.input, err)
			continue
		}
		if syntaxErr.Err != testcase.sentinel {
			t.Errorf("%q: expected %v, got %v", testcase.input, testcase.sentinel, syntaxErr.Err)
		}
		if diff := cmp.Diff(testcase.found, syntaxErr.Found); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := parse("(1 + 2")
	expected := "missing closing parenthesis: expected RIGHTPAREN, found EOF `EOF` at line 0, column 6"
	if err == nil || err.Error() != expected {
		t.Errorf("expected %q, got %v", expected, err)
	}

	_, err = parse("(1 2 3)")
	expected = "invalid operator: expected PLUS, MINUS, STAR or SLASH, found NUMBER `2` at line 0, column 3"
	if err == nil || err.Error() != expected {
		t.Errorf("expected %q, got %v", expected, err)
	}
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	nest := func(depth int) string {
		return strings.Repeat("(1 + ", depth) + "1" + strings.Repeat(")", depth)
	}

	tokens, err := lexer.Lex(nest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parser.Parse(tokens, parser.WithMaxDepth(3)); err != nil {
		t.Errorf("depth 3 rejected: %v", err)
	}
	if _, err := parser.Parse(tokens, parser.WithMaxDepth(2)); !errors.Is(err, parser.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}

	tokens, err = lexer.Lex(nest(parser.DefaultMaxDepth + 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parser.Parse(tokens); !errors.Is(err, parser.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
}

func TestMissingEOF(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{
		{Kind: token.LEFTPAREN, Lexeme: "("},
		{Kind: token.NUMBER, Lexeme: "1"},
	}
	if _, err := parser.Parse(tokens); !errors.Is(err, parser.ErrInvalidOperator) {
		t.Errorf("expected ErrInvalidOperator, got %v", err)
	}
	if _, err := parser.Parse(nil); !errors.Is(err, parser.ErrUnexpectedToken) {
		t.Errorf("expected ErrUnexpectedToken, got %v", err)
	}
	if _, err := parser.Parse([]token.Token{{Kind: token.NUMBER, Lexeme: "1x"}}); !errors.Is(err, parser.ErrInvalidNumber) {
		t.Errorf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	first, err := parse("((2 * (3 + 4)) - 5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := parse("((2 * (3 + 4)) - 5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.Equal(first, second) {
		t.Errorf("Parse is not deterministic: %v vs %v", first, second)
	}
}
