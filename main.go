package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/takoeight0821/ec1/config"
	"github.com/takoeight0821/ec1/driver"
	"github.com/takoeight0821/ec1/parser"
)

// dumper prints the tree fields instead of the infix rendering.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

// errReported is returned once the diagnostics have already been printed.
var errReported = errors.New("reported")

type cli struct {
	out    io.Writer
	errOut io.Writer

	cfgFile   string
	inputPath string
	tokens    bool
	dump      bool
	verbose   bool

	heading lipgloss.Style
	failure lipgloss.Style
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{
		out:     out,
		errOut:  errOut,
		heading: lipgloss.NewRenderer(out).NewStyle().Bold(true),
		failure: lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("9")),
	}

	cmd := &cobra.Command{
		Use:   `ec1 ["<expression>"]`,
		Short: "Evaluate fully parenthesized integer arithmetic",
		Long: `ec1 evaluates expressions such as "(33 + (912 * 11))".
Every binary operation must be wrapped in parentheses.
Without an expression or input file, ec1 starts an interactive prompt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          c.run,
	}

	const inputUsage = "input file path"
	cmd.Flags().StringVarP(&c.inputPath, "input", "i", "", inputUsage)
	cmd.Flags().BoolVar(&c.tokens, "tokens", false, "print the tokens and lexical errors instead of evaluating")
	cmd.Flags().BoolVar(&c.dump, "dump", false, "print the internal structure of the syntax tree")
	cmd.Flags().StringVar(&c.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/ec1/config.toml)")
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "log pipeline diagnostics to stderr")

	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func (c *cli) run(_ *cobra.Command, args []string) error {
	logger := log.New(io.Discard, "", 0)
	if c.verbose {
		logger = log.New(c.errOut, "ec1: ", log.Lmsgprefix)
	}

	cfg, err := c.loadConfig(logger)
	if err != nil {
		return err
	}
	runner := driver.NewRunner(cfg)
	runner.SetLogger(logger)

	var source string
	switch {
	case len(args) == 1 && c.inputPath != "":
		return errors.New("give either an expression or --input, not both")
	case len(args) == 1:
		source = args[0]
	case c.inputPath != "":
		bytes, err := os.ReadFile(c.inputPath)
		if err != nil {
			return err
		}
		source = string(bytes)
	default:
		return runPrompt(c, runner, cfg)
	}

	if c.tokens {
		tokens, errs := runner.Tokens(source)
		fmt.Fprint(c.out, driver.FormatTokens(tokens, errs))
		if len(errs) > 0 {
			return errReported
		}
		return nil
	}

	return c.evaluate(runner, cfg, source)
}

func (c *cli) loadConfig(logger *log.Logger) (*config.Config, error) {
	if c.cfgFile != "" {
		logger.Printf("config: %s", c.cfgFile)
		return config.Load(c.cfgFile)
	}

	cfg, path, err := config.Discover()
	if path == "" {
		logger.Printf("config: defaults")
	} else {
		logger.Printf("config: %s", path)
	}

	return cfg, err
}

// evaluate runs source and prints either the result or its diagnostics.
func (c *cli) evaluate(runner *driver.Runner, cfg *config.Config, source string) error {
	res, err := runner.RunSource(source)
	if err != nil {
		c.report(err)
		return errReported
	}

	if c.dump {
		dumper.Fdump(c.out, res.Tree)
		return nil
	}

	heading := func(s string) string { return c.heading.Render(s) }
	fmt.Fprint(c.out, driver.Format(res, cfg.Output, heading))

	return nil
}

// report prints lexical errors one per line, or the single syntax or evaluation error.
func (c *cli) report(err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintln(c.errOut, c.failure.Render("SyntaxError: "+syntaxErr.Error()))
		return
	}

	var lexErrs interface{ Unwrap() []error }
	if errors.As(err, &lexErrs) {
		for _, err := range lexErrs.Unwrap() {
			fmt.Fprintln(c.errOut, c.failure.Render(err.Error()))
		}
		return
	}

	fmt.Fprintln(c.errOut, c.failure.Render("Error: "+err.Error()))
}
