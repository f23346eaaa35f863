package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandPlaysBoard(t *testing.T) {
	board := writeFile(t, "board.yaml", "board: |\n  O##\n  ###\n")

	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--board", board, "--log-level", "error"})
	rootCmd.SetIn(strings.NewReader("3 2 free\n1 2 free\n"))
	rootCmd.SetOut(&out)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Congratulations! You found all the mines!")
}
