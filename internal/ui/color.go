package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func TokenLine(w io.Writer, typ string, value string, pos int) {
	fmt.Fprintf(w, "%4d  %s  %s\n", pos, faintStyle.Render(fmt.Sprintf("%-11s", typ)), value)
}

// FormattedValue prints a format result, rendered in its resolved color
// when one applies. lipgloss accepts CSS hex strings directly.
func FormattedValue(w io.Writer, text, color string) {
	if color == "" {
		fmt.Fprintln(w, text)
		return
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	fmt.Fprintln(w, style.Render(text)+"  "+faintStyle.Render(color))
}

func ProblemLine(w io.Writer, msg string) {
	fmt.Fprintln(w, problemStyle.Render("problem")+"  "+msg)
}

func OkLine(w io.Writer, msg string) {
	fmt.Fprintln(w, okStyle.Render("ok")+"  "+msg)
}
