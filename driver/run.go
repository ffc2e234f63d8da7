package driver

import (
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/takoeight0821/ec1/ast"
	"github.com/takoeight0821/ec1/config"
	"github.com/takoeight0821/ec1/eval"
	"github.com/takoeight0821/ec1/lexer"
	"github.com/takoeight0821/ec1/parser"
	"github.com/takoeight0821/ec1/token"
)

// Result is the outcome of running one expression.
type Result struct {
	Tokens []token.Token
	Tree   ast.Node
	Value  *big.Int
}

// Infix returns the fully parenthesized rendering of the tree.
func (r *Result) Infix() string {
	return r.Tree.String()
}

// Pretty returns the box-drawing rendering of the tree.
func (r *Result) Pretty() string {
	return ast.Tree(r.Tree)
}

// Runner scans, parses and evaluates source code according to a Config.
type Runner struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Runner{cfg: cfg, logger: log.New(io.Discard, "", 0)}
}

// SetLogger sets the logger receiving stage diagnostics.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Tokens scans source without parsing it.
func (r *Runner) Tokens(source string) ([]token.Token, []lexer.Error) {
	return lexer.Scan(strings.NewReader(source))
}

// RunSource runs the whole pipeline on source.
// Lexical errors stop the pipeline before parsing; the returned error then
// joins all of them. Parsing stops at the first syntax error.
func (r *Runner) RunSource(source string) (*Result, error) {
	start := time.Now()
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}
	r.logger.Printf("lex: %d tokens in %v", len(tokens), time.Since(start))

	start = time.Now()
	tree, err := parser.Parse(tokens, parser.WithMaxDepth(r.cfg.MaxDepth))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	r.logger.Printf("parse: %v in %v", tree, time.Since(start))

	start = time.Now()
	value, err := eval.NewEvaluator(eval.WithDivision(r.cfg.DivisionMode())).Eval(tree)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	r.logger.Printf("eval: %v (%v division) in %v", value, r.cfg.DivisionMode(), time.Since(start))

	return &Result{Tokens: tokens, Tree: tree, Value: value}, nil
}

// RunFile runs the expression stored in the file at path.
func (r *Runner) RunFile(path string) (*Result, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return r.RunSource(string(bytes))
}

// Format renders the sections of res selected by out, separated by blank lines.
// heading decorates each section title; nil leaves titles unchanged.
func Format(res *Result, out config.Output, heading func(string) string) string {
	if heading == nil {
		heading = func(s string) string { return s }
	}

	var sections []string
	if out.Infix {
		sections = append(sections, heading("Syntax tree:")+"\n"+res.Infix())
	}
	if out.Value {
		sections = append(sections, heading("Value:")+"\n"+res.Value.String())
	}
	if out.Tree {
		sections = append(sections, heading("Structure:")+"\n"+res.Pretty())
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// FormatTokens renders a token dump followed by the lexical errors, one per line.
func FormatTokens(tokens []token.Token, errs []lexer.Error) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	for _, err := range errs {
		b.WriteString(err.Error())
		b.WriteString("\n")
	}

	return b.String()
}
