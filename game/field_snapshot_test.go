package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotKeepsGameState(t *testing.T) {
	field := mustLoadField(t, "O#O\n###\n##O", true)
	require.NoError(t, field.Reveal(6))
	require.NoError(t, field.ToggleFlag(2))
	require.NoError(t, field.ToggleFlag(5))

	snapshot := field.Snapshot()
	assert.Equal(t, "O#F\n..f\n..O", snapshot.Board)
	assert.Equal(t, "in_progress", snapshot.Status)

	loaded, err := LoadSnapshot(snapshot.Serialize())
	require.NoError(t, err)
	restored, err := loaded.CreateField(false)
	require.NoError(t, err)

	assert.Equal(t, field.Snapshot(), restored.Snapshot())
	assert.Equal(t, field.String(), restored.String())
	assert.Equal(t, 3, restored.NumMines())
	assert.Equal(t, 2, restored.NumFlags())
	assert.True(t, restored.MinesPlaced())
}

func TestSnapshotFreshStartsOver(t *testing.T) {
	snapshot, err := LoadSnapshot("status: lost\nboard: |\n  X.\n  f#\n")
	require.NoError(t, err)

	field, err := snapshot.CreateField(false)
	require.NoError(t, err)
	assert.Equal(t, Lost, field.Status())
	assert.False(t, field.CellAt(0).IsHidden())

	field, err = snapshot.CreateField(true)
	require.NoError(t, err)
	assert.Equal(t, InProgress, field.Status())
	assert.Equal(t, "O#\n##", field.Snapshot().Board)
	assert.Zero(t, field.NumFlags())
}

func TestSnapshotRevealSkipsRelocation(t *testing.T) {
	field := mustLoadField(t, "O##", true)

	require.NoError(t, field.Reveal(0))
	assert.Equal(t, Lost, field.Status())
}

func TestInvalidSnapshots(t *testing.T) {
	tests := []struct {
		name     string
		snapshot FieldSnapshot
	}{
		{"empty", FieldSnapshot{Board: ""}},
		{"ragged", FieldSnapshot{Board: "###\n##"}},
		{"unknown cell", FieldSnapshot{Board: "#?#"}},
		{"only mines", FieldSnapshot{Board: "OO\nXF"}},
		{"unknown status", FieldSnapshot{Status: "paused", Board: "O#"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.snapshot.CreateField(false)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}

	_, err := LoadSnapshot("board: [unclosed")
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
