package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestPrintHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	var buf bytes.Buffer
	require.NoError(t, printHistory(&buf, store, 10))
	assert.Contains(t, buf.String(), "No rounds recorded yet")

	for _, r := range []storage.RoundRecord{
		{Host: "tui", Pieces: 10, RowsCleared: 2, Ticks: 300, EndReason: storage.EndTopOut},
		{Host: "ssh", Pieces: 30, RowsCleared: 7, Ticks: 900, EndReason: storage.EndQuit},
	} {
		_, err := store.SaveRound(r)
		require.NoError(t, err)
	}

	buf.Reset()
	require.NoError(t, printHistory(&buf, store, 1))
	out := buf.String()
	assert.Contains(t, out, "Recent rounds (1 of 2)")
	assert.Contains(t, out, "ssh")
	assert.NotContains(t, out, "topout")
	assert.Contains(t, out, "Total: 40 pieces, 9 rows. Best round: 7 rows.")
}

func TestGameOptionsFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagSpeed = "brisk"
	flagConfig = ""
	t.Cleanup(func() { flagSpeed = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)

	opts := gameOptions(cfg, 7, 0)
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, cfg.Timing.SpeedUpDivider, opts.SpeedUpDivider)
	assert.Equal(t, cfg.Render.TileWidth, opts.Style.TileWidth)
	assert.True(t, strings.ContainsRune(cfg.Render.FilledGlyph, opts.Style.Filled))
}

func TestLoadConfigRejectsUnknownSpeed(t *testing.T) {
	flagSpeed = "warp"
	t.Cleanup(func() { flagSpeed = "" })

	_, err := loadConfig()
	assert.Error(t, err)
}
