package cmd

import (
	"fmt"
	"os"

	"github.com/eirikvaa/jlox/internal/ast"
	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/interp"
	"github.com/eirikvaa/jlox/internal/parser"
	"github.com/eirikvaa/jlox/internal/resolver"
	"github.com/eirikvaa/jlox/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file or an inline expression",
	Long: `Scan, parse, resolve, and execute a program.

Examples:
  lox run script.lox
  lox run -e 'print "hello";'
  lox run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before executing")
}

func runScript(_ *cobra.Command, args []string) error {
	var source, filename string

	switch {
	case evalExpr != "":
		source, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	reporter := errors.NewTextReporter(os.Stderr)

	toks := scanner.New(source, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadCompileError() {
		os.Exit(65)
	}

	interpreter := interp.New(os.Stdout)
	resolver.New(interpreter, reporter).ResolveProgram(stmts)
	if reporter.HadCompileError() {
		os.Exit(65)
	}

	if dumpAST {
		fmt.Fprint(os.Stderr, ast.NewPrinter().PrintProgram(stmts))
	}

	if runtimeErr := interpreter.Run(stmts); runtimeErr != nil {
		reporter.ReportRuntime(runtimeErr)
		os.Exit(70)
	}

	return nil
}
