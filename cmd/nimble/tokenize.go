package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nimble/internal/diag"
	"nimble/internal/diagfmt"
	"nimble/internal/lexer"
	"nimble/internal/source"
	"nimble/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the token stream of a Nimble file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}
	file := fileSet.Get(id)

	maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.New(file, diag.BagReporter{Bag: bag}).ScanAll()

	for _, t := range tokens {
		if t.Kind == token.EOF {
			break
		}
		pos := file.Position(t.Span.Start)
		fmt.Printf("%d:%d\t%s\t%q\n", pos.Line, pos.Col, t.Kind, t.Text)
	}

	diagfmt.Pretty(os.Stdout, bag, fileSet, diagfmt.Options{Color: useColor(cmd)})
	return nil
}
