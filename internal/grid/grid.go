// Package grid defines the surface this tool expects from a host grid
// widget. The widget itself is an external collaborator; only column
// lookup, column mutation, and refresh operations are consumed.
package grid

// Pin is a column pin side.
type Pin string

const (
	PinNone  Pin = ""
	PinLeft  Pin = "left"
	PinRight Pin = "right"
)

// ColumnDef is the host widget's definition for one column.
type ColumnDef struct {
	ID         string
	HeaderName string
	Width      int
	Hidden     bool
	Pinned     Pin
}

// Column is a handle to one live grid column.
type Column interface {
	Def() *ColumnDef
	SetVisible(visible bool)
	SetPinned(side Pin)
}

// RefreshOptions narrows a cell refresh to particular columns; empty
// means all.
type RefreshOptions struct {
	Columns []string
	Force   bool
}

// Grid is the host widget surface.
type Grid interface {
	Column(id string) (Column, bool)
	RefreshHeader()
	RefreshCells(opts RefreshOptions)
}
