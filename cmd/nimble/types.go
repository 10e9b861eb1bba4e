package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nimble/internal/parser"
	"nimble/internal/semtest"
)

var typesCmd = &cobra.Command{
	Use:   "types <file>",
	Short: "Print the inferred type of every expression in a Nimble file",
	Long: `Runs both analysis phases over the file and prints the line-indexed
type report the test harness asserts against.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().Bool("first-phase-only", false, "run only the scope/symbol phase")
	typesCmd.Flags().String("start", "script", "start rule (script|statement|expression)")
}

func runTypes(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	startName, _ := cmd.Flags().GetString("start")
	var start parser.StartRule
	switch startName {
	case "script":
		start = parser.StartScript
	case "statement":
		start = parser.StartStatement
	case "expression":
		start = parser.StartExpression
	default:
		return fmt.Errorf("unknown start rule %q", startName)
	}

	firstPhaseOnly, _ := cmd.Flags().GetBool("first-phase-only")
	res := semtest.Analyze(string(content), start, firstPhaseOnly)

	for _, msg := range res.Errors.Messages() {
		fmt.Fprintln(os.Stderr, msg)
	}
	fmt.Println(semtest.FormatTypes(res.Types))
	return nil
}
