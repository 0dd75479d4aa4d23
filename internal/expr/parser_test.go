package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MultiplicationBindsTighterThanAddition(t *testing.T) {
	node, err := Parse("1 + 2 * 3")
	require.NoError(t, err)

	root, ok := node.(*Operation)
	require.True(t, ok)
	assert.Equal(t, "+", root.Operator)

	left, ok := root.Left.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "1", left.Value)

	right, ok := root.Right.(*Operation)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator)
	assert.Equal(t, "2", right.Left.(*Literal).Value)
	assert.Equal(t, "3", right.Right.(*Literal).Value)
}

func TestParse_ParenthesesOverridePrecedence(t *testing.T) {
	node, err := Parse("(1 + 2) * 3")
	require.NoError(t, err)

	root, ok := node.(*Operation)
	require.True(t, ok)
	assert.Equal(t, "*", root.Operator)

	left, ok := root.Left.(*Operation)
	require.True(t, ok)
	assert.Equal(t, "+", left.Operator)
	assert.Equal(t, "3", root.Right.(*Literal).Value)
}

func TestParse_LeftAssociativity(t *testing.T) {
	node, err := Parse("1 - 2 - 3")
	require.NoError(t, err)

	root := node.(*Operation)
	assert.Equal(t, "-", root.Operator)
	assert.Equal(t, "3", root.Right.(*Literal).Value)

	inner := root.Left.(*Operation)
	assert.Equal(t, "1", inner.Left.(*Literal).Value)
	assert.Equal(t, "2", inner.Right.(*Literal).Value)
}

func TestParse_ComparisonBelowAdditive(t *testing.T) {
	node, err := Parse("[Qty] + 1 > 10")
	require.NoError(t, err)

	root := node.(*Operation)
	assert.Equal(t, ">", root.Operator)

	left := root.Left.(*Operation)
	assert.Equal(t, "+", left.Operator)
	assert.Equal(t, "Qty", left.Left.(*ColumnRef).Name)
}

func TestParse_LogicalTiers(t *testing.T) {
	node, err := Parse("[A] > 1 && [B] > 2 || [C] > 3")
	require.NoError(t, err)

	root := node.(*Operation)
	assert.Equal(t, "||", root.Operator)
	assert.Equal(t, "&&", root.Left.(*Operation).Operator)
	assert.Equal(t, ">", root.Right.(*Operation).Operator)
}

func TestParse_INBindsAsComparison(t *testing.T) {
	node, err := Parse("[Side] IN 'BS'")
	require.NoError(t, err)

	root := node.(*Operation)
	assert.Equal(t, "IN", root.Operator)
	assert.Equal(t, "Side", root.Left.(*ColumnRef).Name)
	assert.Equal(t, "BS", root.Right.(*Literal).Value)
}

func TestParse_FunctionNoArguments(t *testing.T) {
	node, err := Parse("SUM()")
	require.NoError(t, err)

	call, ok := node.(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "SUM", call.Name)
	assert.Empty(t, call.Args)
}

func TestParse_FunctionArgumentsInOrder(t *testing.T) {
	node, err := Parse("SUM([A], [B])")
	require.NoError(t, err)

	call := node.(*FunctionCall)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "A", call.Args[0].(*ColumnRef).Name)
	assert.Equal(t, "B", call.Args[1].(*ColumnRef).Name)
}

func TestParse_NestedFunctionCalls(t *testing.T) {
	node, err := Parse("ROUND(SUM([A]), 2)")
	require.NoError(t, err)

	outer := node.(*FunctionCall)
	require.Len(t, outer.Args, 2)
	inner, ok := outer.Args[0].(*FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "SUM", inner.Name)
}

func TestParse_StringLiteral(t *testing.T) {
	node, err := Parse("'hello'")
	require.NoError(t, err)

	lit := node.(*Literal)
	assert.Equal(t, LiteralString, lit.Kind)
	assert.Equal(t, "hello", lit.Value)
}

func TestParse_UnclosedCall(t *testing.T) {
	_, err := Parse("SUM(1,")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "unexpected end of expression", perr.Message)
}

func TestParse_MissingClosingParen(t *testing.T) {
	_, err := Parse("(1 + 2")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParse_MissingOperand(t *testing.T) {
	_, err := Parse("1 +")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "unexpected end of expression", perr.Message)
}

func TestParse_UnknownLeadingToken(t *testing.T) {
	_, err := Parse(", 1")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ",", perr.Token)
	assert.Equal(t, 0, perr.Pos)
}

func TestParse_UnregisteredIdentifierFails(t *testing.T) {
	// FOO tokenizes as a plain identifier, which is not a primary.
	_, err := Parse("FOO(1)")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "FOO", perr.Token)
}

func TestParse_TrailingTokens(t *testing.T) {
	_, err := Parse("1 2")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "2", perr.Token)
	assert.Equal(t, 2, perr.Pos)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	assert.EqualError(t, err, "unexpected end of expression")
}

func TestParse_Deterministic(t *testing.T) {
	first, err := Parse("SUM([A], 1 + 2 * 3)")
	require.NoError(t, err)
	second, err := Parse("SUM([A], 1 + 2 * 3)")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
