package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Node {
	t.Helper()
	node, err := Parse(text)
	require.NoError(t, err)
	return node
}

func TestValidate_CleanTree(t *testing.T) {
	node := mustParse(t, "ROUND([Price], 2)")
	assert.Empty(t, Validate(node))
}

func TestValidate_TooFewArguments(t *testing.T) {
	node := mustParse(t, "POWER(2)")
	problems := Validate(node)
	require.Len(t, problems, 1)
	assert.Equal(t, "POWER", problems[0].Function)
	assert.Contains(t, problems[0].Message, "at least 2")
}

func TestValidate_TooManyArguments(t *testing.T) {
	node := mustParse(t, "ABS(1, 2)")
	problems := Validate(node)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "at most 1")
}

func TestValidate_VariadicAcceptsManyArguments(t *testing.T) {
	node := mustParse(t, "SUM(1, 2, 3, 4, 5)")
	assert.Empty(t, Validate(node))
}

func TestValidate_OptionalParameterMayBeOmitted(t *testing.T) {
	node := mustParse(t, "ROUND([Price])")
	assert.Empty(t, Validate(node))
}

func TestValidate_ZeroArgsAgainstRequiredParam(t *testing.T) {
	// SUM() parses fine; the checker flags it.
	node := mustParse(t, "SUM()")
	problems := Validate(node)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Message, "at least 1")
}

func TestValidate_WalksNestedCalls(t *testing.T) {
	node := mustParse(t, "ROUND(POWER(2), SQRT(4))")
	problems := Validate(node)
	require.Len(t, problems, 1)
	assert.Equal(t, "POWER", problems[0].Function)
}

func TestValidate_WalksOperationChildren(t *testing.T) {
	node := mustParse(t, "1 + POWER(2)")
	problems := Validate(node)
	require.Len(t, problems, 1)
	assert.Equal(t, "POWER", problems[0].Function)
}

func TestValidate_UnknownFunction(t *testing.T) {
	// Parse can't produce one (unregistered names fail at parse time),
	// but hosts may build trees directly.
	node := &FunctionCall{Name: "FOO"}
	problems := Validate(node)
	require.Len(t, problems, 1)
	assert.Equal(t, "unknown function FOO", problems[0].Message)
}

func TestValidate_NeverConsultedByParse(t *testing.T) {
	// Arity violations are invisible to the parser by contract.
	_, err := Parse("ABS(1, 2, 3, 4)")
	assert.NoError(t, err)
}
