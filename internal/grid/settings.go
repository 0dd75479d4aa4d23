package grid

import (
	"fmt"

	"github.com/colfig/colfig/internal/expr"
	"github.com/colfig/colfig/internal/format"
)

// Style is the display styling applied to a column's header or cells.
type Style struct {
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	TextAlign  string `json:"textAlign,omitempty"`
}

// Settings is the full per-column configuration a profile persists.
// Nil Visible means "leave visibility alone".
type Settings struct {
	ColumnID    string `json:"columnId"`
	HeaderName  string `json:"headerName,omitempty"`
	Width       int    `json:"width,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
	Pinned      Pin    `json:"pinned,omitempty"`
	HeaderStyle Style  `json:"headerStyle,omitempty"`
	CellStyle   Style  `json:"cellStyle,omitempty"`
	Format      string `json:"format,omitempty"`
	Expression  string `json:"expression,omitempty"`
	Filter      string `json:"filter,omitempty"`
	Editor      string `json:"editor,omitempty"`
}

// Apply pushes s onto the grid and refreshes the header and the
// affected column's cells.
func Apply(g Grid, s Settings) error {
	col, ok := g.Column(s.ColumnID)
	if !ok {
		return fmt.Errorf("column %q not found", s.ColumnID)
	}

	def := col.Def()
	if s.HeaderName != "" {
		def.HeaderName = s.HeaderName
	}
	if s.Width > 0 {
		def.Width = s.Width
	}
	if s.Visible != nil {
		col.SetVisible(*s.Visible)
	}
	col.SetPinned(s.Pinned)

	g.RefreshHeader()
	g.RefreshCells(RefreshOptions{Columns: []string{s.ColumnID}, Force: true})
	return nil
}

// Check lints a settings payload before it is saved: the expression must
// parse and its function calls must pass validation. The format string
// cannot fail by contract, so a sample render is run purely to confirm
// it resolves a section. Findings are advisory.
func (s Settings) Check() []string {
	var findings []string

	if s.ColumnID == "" {
		findings = append(findings, "column id is required")
	}
	if s.Pinned != PinNone && s.Pinned != PinLeft && s.Pinned != PinRight {
		findings = append(findings, fmt.Sprintf("unknown pin side %q", s.Pinned))
	}

	if s.Expression != "" {
		node, err := expr.Parse(s.Expression)
		if err != nil {
			findings = append(findings, fmt.Sprintf("expression: %v", err))
		} else {
			for _, p := range expr.Validate(node) {
				findings = append(findings, fmt.Sprintf("expression: %s", p.Message))
			}
		}
	}

	if s.Format != "" {
		if res := format.Format(0.0, s.Format); res.Text == "" {
			findings = append(findings, "format string renders zero values as empty text")
		}
	}

	return findings
}
