package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planargrid/planargrid/loader"
)

func TestLines_SplitsOnNewline(t *testing.T) {
	got, err := loader.Lines(strings.NewReader("+--+\n|  |\n+--+\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"+--+", "|  |", "+--+"}, got)
}

func TestLines_NoTrailingNewline(t *testing.T) {
	got, err := loader.Lines(strings.NewReader("---"))
	require.NoError(t, err)
	assert.Equal(t, []string{"---"}, got)
}

func TestLines_PreservesBlankLines(t *testing.T) {
	got, err := loader.Lines(strings.NewReader("-\n\n-\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "", "-"}, got)
}

func TestFile_MissingReturnsError(t *testing.T) {
	_, err := loader.File("/nonexistent/path/does-not-exist.txt")
	require.Error(t, err)
}
