// Command lox is the command-line front end for the tree-walking
// interpreter: it wires the scanner, parser, resolver, and interpreter
// packages together behind a small cobra CLI.
package main

import (
	"fmt"
	"os"

	"github.com/eirikvaa/jlox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
