package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/colfig/colfig/internal/expr"
	"github.com/colfig/colfig/internal/ui"
	"github.com/spf13/cobra"
)

var checkFlag bool

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an expression and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], checkFlag)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&checkFlag, "check", false, "Validate function names and argument counts")
	rootCmd.AddCommand(parseCmd)
}

func RunParse(w io.Writer, text string, check bool) error {
	node, err := expr.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing expression: %w", err)
	}

	printNode(w, node, 0)

	if check {
		problems := expr.Validate(node)
		if len(problems) == 0 {
			ui.OkLine(w, "no problems")
		}
		for _, p := range problems {
			ui.ProblemLine(w, p.Message)
		}
	}
	return nil
}

func printNode(w io.Writer, n expr.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *expr.Operation:
		fmt.Fprintf(w, "%soperation %s\n", indent, node.Operator)
		printNode(w, node.Left, depth+1)
		printNode(w, node.Right, depth+1)
	case *expr.FunctionCall:
		fmt.Fprintf(w, "%sfunction %s\n", indent, node.Name)
		for _, arg := range node.Args {
			printNode(w, arg, depth+1)
		}
	case *expr.ColumnRef:
		fmt.Fprintf(w, "%scolumn %s\n", indent, node.Name)
	case *expr.Literal:
		kind := "number"
		if node.Kind == expr.LiteralString {
			kind = "string"
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, kind, node.Value)
	}
}
