package cmd

import (
	"io"
	"strconv"

	"github.com/colfig/colfig/internal/format"
	"github.com/colfig/colfig/internal/ui"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <value> <format-string>",
	Short: "Evaluate a value against a conditional format string",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunFormat(cmd.OutOrStdout(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func RunFormat(w io.Writer, rawValue, spec string) error {
	var value any = rawValue
	if n, err := strconv.ParseFloat(rawValue, 64); err == nil {
		value = n
	}
	res := format.Format(value, spec)
	ui.FormattedValue(w, res.Text, res.Color)
	return nil
}
