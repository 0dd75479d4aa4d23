package expr

// Node is the interface all parse-tree nodes implement. Trees are
// immutable once built; ownership runs strictly parent to children.
type Node interface {
	node()
}

// Operation is a binary operation.
type Operation struct {
	Operator string
	Left     Node
	Right    Node
}

// FunctionCall is a call to a registered function. Args are in source
// order and may be empty. Arity is not checked at parse time; see Validate.
type FunctionCall struct {
	Name string
	Args []Node
}

// ColumnRef references a grid column by identifier, brackets stripped.
type ColumnRef struct {
	Name string
}

// LiteralKind distinguishes the two literal forms.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
)

// Literal is a number or string literal. Value holds the raw token text
// (quotes already stripped for strings).
type Literal struct {
	Kind  LiteralKind
	Value string
}

func (*Operation) node()    {}
func (*FunctionCall) node() {}
func (*ColumnRef) node()    {}
func (*Literal) node()      {}
