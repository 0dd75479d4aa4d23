package cmd

import (
	"fmt"
	"io"

	"github.com/colfig/colfig/internal/expr"
	"github.com/spf13/cobra"
)

var categoryFlag string

var functionsCmd = &cobra.Command{
	Use:   "functions [name]",
	Short: "Browse the expression function catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return RunFunctions(cmd.OutOrStdout(), categoryFlag, name)
	},
}

func init() {
	functionsCmd.Flags().StringVar(&categoryFlag, "category", "", "Filter by category")
	rootCmd.AddCommand(functionsCmd)
}

func RunFunctions(w io.Writer, category, name string) error {
	if name != "" {
		def, ok := expr.FunctionByName(name)
		if !ok {
			return fmt.Errorf("unknown function: %s", name)
		}
		printDefinition(w, def)
		return nil
	}

	if category != "" {
		defs := expr.FunctionsByCategory(expr.Category(category))
		if len(defs) == 0 {
			return fmt.Errorf("unknown category: %s", category)
		}
		for _, def := range defs {
			fmt.Fprintf(w, "%-10s %s\n", def.Name, def.Example)
		}
		return nil
	}

	for _, cat := range expr.Categories() {
		fmt.Fprintf(w, "%s:\n", cat)
		for _, def := range expr.FunctionsByCategory(cat) {
			fmt.Fprintf(w, "  %-10s %s\n", def.Name, def.Example)
		}
	}
	return nil
}

func printDefinition(w io.Writer, def *expr.FunctionDefinition) {
	fmt.Fprintf(w, "%s (%s) -> %s\n", def.Name, def.Category, def.ReturnType)
	for _, p := range def.Parameters {
		optional := ""
		if p.Optional {
			optional = " (optional)"
		}
		fmt.Fprintf(w, "  %s %s%s: %s\n", p.Name, p.Type, optional, p.Description)
	}
	if def.Variadic {
		fmt.Fprintln(w, "  last parameter repeats")
	}
	fmt.Fprintf(w, "  example: %s\n", def.Example)
}
