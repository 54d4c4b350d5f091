// Command yargon-parsing is a small demonstration CLI built on the parser
// combinator library: it lexes and parses an arithmetic expression and
// prints either the resulting value or every diagnostic the parse raised.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	yargon "github.com/cyberlect/yargon-parsing"
	"github.com/cyberlect/yargon-parsing/token"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "yargon-parsing",
		Short: "Evaluate arithmetic expressions with a parser combinator grammar",
	}
	root.AddCommand(newParseCommand())
	return root
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse and evaluate a single arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0])
		},
	}
}

func runParse(cmd *cobra.Command, source string) error {
	tokens, err := token.Scan(source)
	if err != nil {
		color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err.Error())
		return err
	}

	stream := token.NewStream(tokens)
	outcome := yargon.Parse(expression(), stream)

	if outcome.Successful() {
		printDiagnostics(cmd, outcome.Messages())
		fmt.Fprintln(cmd.OutOrStdout(), outcome.Value())
		return nil
	}

	printDiagnostics(cmd, outcome.Messages())
	return aggregateErrors(outcome.Messages())
}

func printDiagnostics(cmd *cobra.Command, diags []yargon.Diagnostic) {
	for _, d := range diags {
		c := severityColor(d.Severity)
		c.Fprintln(cmd.ErrOrStderr(), d.String())
	}
}

func severityColor(s yargon.Severity) *color.Color {
	switch s {
	case yargon.Error:
		return color.New(color.FgRed)
	case yargon.Warning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}

// aggregateErrors folds every Error-severity diagnostic into a single
// *multierror.Error, rather than surfacing only the first failure.
func aggregateErrors(diags []yargon.Diagnostic) error {
	var result *multierror.Error
	for _, d := range diags {
		if d.Severity != yargon.Error {
			continue
		}
		result = multierror.Append(result, fmt.Errorf("%s", d.Text))
	}
	if result == nil {
		result = multierror.Append(result, fmt.Errorf("parse failed"))
	}
	return result.ErrorOrNil()
}
