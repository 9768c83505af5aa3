package cmd

import (
	"fmt"
	"os"

	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/scanner"
	"github.com/eirikvaa/jlox/internal/token"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Scan a source file and print its tokens",
	Long: `Scan (tokenize) a program and print the resulting token stream, one
token per line. Useful for debugging the scanner.`,
	Args: cobra.ExactArgs(1),
	RunE: tokenizeFile,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func tokenizeFile(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	reporter := errors.NewTextReporter(os.Stderr)
	toks := scanner.New(string(content), reporter).ScanTokens()
	for _, tok := range toks {
		fmt.Println(tok.String())
		if tok.Type == token.EOF {
			break
		}
	}

	if reporter.HadCompileError() {
		os.Exit(65)
	}
	return nil
}
