package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestHistoryModelShowsRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveRound(storage.RoundRecord{Host: "tui", Pieces: 17, RowsCleared: 4, Ticks: 500, EndReason: storage.EndTopOut})
	require.NoError(t, err)

	m := NewHistoryModel(store, 100, 30)
	view := m.View()
	assert.Contains(t, view, "ROUND HISTORY")
	assert.Contains(t, view, "1 rounds")
	assert.Contains(t, view, "topout")
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No rounds recorded yet")
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	hm, ok := next.(HistoryModel)
	require.True(t, ok)
	assert.Empty(t, hm.View())
}
