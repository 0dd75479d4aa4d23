package cmd

import (
	"fmt"
	"io"

	"github.com/colfig/colfig/internal/expr"
	"github.com/colfig/colfig/internal/ui"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <expression>",
	Short: "Print the token stream of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunTokens(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func RunTokens(w io.Writer, text string) error {
	tokens := expr.Tokenize(text)
	if len(tokens) == 0 {
		fmt.Fprintln(w, "no tokens")
		return nil
	}
	for _, tok := range tokens {
		ui.TokenLine(w, tok.Type.String(), tok.Value, tok.Pos)
	}
	return nil
}
