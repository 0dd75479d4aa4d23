package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFunctions(t *testing.T, category, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunFunctions(&buf, category, name))
	return buf.String()
}

func TestFunctions_ListsAllCategories(t *testing.T) {
	out := runFunctions(t, "", "")

	assert.Contains(t, out, "aggregation:")
	assert.Contains(t, out, "financial:")
	assert.Contains(t, out, "SUM")
	assert.Contains(t, out, "PMT")
}

func TestFunctions_FilterByCategory(t *testing.T) {
	out := runFunctions(t, "logical", "")

	assert.Contains(t, out, "IF")
	assert.NotContains(t, out, "SUM")
}

func TestFunctions_ShowOneDefinition(t *testing.T) {
	out := runFunctions(t, "", "ROUND")

	assert.Contains(t, out, "ROUND (mathematical) -> number")
	assert.Contains(t, out, "digits number (optional)")
	assert.Contains(t, out, "example: ROUND([Price], 2)")
}

func TestFunctions_UnknownName(t *testing.T) {
	var buf bytes.Buffer
	err := RunFunctions(&buf, "", "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestFunctions_UnknownCategory(t *testing.T) {
	var buf bytes.Buffer
	err := RunFunctions(&buf, "bogus", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
