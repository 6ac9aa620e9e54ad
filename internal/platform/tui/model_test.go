package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/dependencies/mocks"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/storage"
)

type testHost struct {
	model Model
	game  *blocks.Game
	clock *mocks.MockClock
	saver *fakeSaver
}

func newTestHost(t *testing.T, screenshotDir string) *testHost {
	t.Helper()
	rng := mocks.NewMockRandom()
	rng.Fallback = int(blocks.PieceO)

	saver := &fakeSaver{}
	rec := NewRecorder(saver, "tui", nil)
	game := blocks.New(blocks.Options{
		Picker:        blocks.NewRandomPicker(rng),
		FrameDuration: 50 * time.Millisecond,
		OnRoundEnd:    func(s blocks.RoundStats) { rec.Record(s, storage.EndTopOut) },
	})
	clk := mocks.NewMockClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	m := NewModel(game, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20},
		SoftDropHold:  300 * time.Millisecond,
		ScreenshotDir: screenshotDir,
		Recorder:      rec,
		Clock:         clk,
	})
	return &testHost{model: m, game: game, clock: clk, saver: saver}
}

func (h *testHost) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	h.model = m
	return cmd
}

func (h *testHost) frame(t *testing.T) {
	t.Helper()
	h.send(t, TickMsg(h.clock.Now()))
}

func TestModelMovesPieceOnNextFrame(t *testing.T) {
	h := newTestHost(t, "")

	h.send(t, runeKey('d'))
	assert.Equal(t, blocks.SpawnCol, h.game.Active().Col)

	h.frame(t)
	assert.Equal(t, blocks.SpawnCol+1, h.game.Active().Col)
}

func TestModelSoftDropLifecycle(t *testing.T) {
	h := newTestHost(t, "")

	h.send(t, tea.KeyMsg{Type: tea.KeyDown})
	h.frame(t)
	assert.True(t, h.game.Accelerating())
	assert.True(t, h.model.State().Accelerating)

	h.clock.Advance(200 * time.Millisecond)
	h.send(t, tea.KeyMsg{Type: tea.KeyDown})
	h.frame(t)
	assert.True(t, h.game.Accelerating())

	h.clock.Advance(300 * time.Millisecond)
	h.frame(t)
	assert.False(t, h.game.Accelerating())
	assert.Equal(t, h.game.NormalInterval(), h.game.Interval())
}

func TestModelSoftDropEndsDuringPause(t *testing.T) {
	h := newTestHost(t, "")

	h.send(t, tea.KeyMsg{Type: tea.KeyDown})
	h.frame(t)
	require.True(t, h.game.Accelerating())

	h.send(t, runeKey('p'))
	h.frame(t)
	require.True(t, h.game.Paused())

	h.clock.Advance(time.Second)
	h.frame(t)

	h.send(t, runeKey('p'))
	h.frame(t)
	assert.False(t, h.game.Paused())
	assert.False(t, h.game.Accelerating())
	assert.Equal(t, h.game.NormalInterval(), h.game.Interval())
}

func TestModelQuitRecordsRound(t *testing.T) {
	h := newTestHost(t, "")

	// 50ms frames against a 200ms interval: one fall tick per four frames
	for i := 0; i < 4*22; i++ {
		h.frame(t)
	}
	require.Equal(t, 1, h.game.Round().Pieces)

	cmd := h.send(t, runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, h.model.IsQuitting())
	assert.Empty(t, h.model.View())
	require.Len(t, h.saver.saved, 1)
	assert.Equal(t, storage.EndQuit, h.saver.saved[0].EndReason)
	assert.Equal(t, 1, h.saver.saved[0].Pieces)
}

func TestModelQuitWithoutPiecesSavesNothing(t *testing.T) {
	h := newTestHost(t, "")
	h.frame(t)
	h.send(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Empty(t, h.saver.saved)
}

func TestModelRestart(t *testing.T) {
	h := newTestHost(t, "")
	for i := 0; i < 4*22; i++ {
		h.frame(t)
	}
	grid := h.game.Grid()
	require.False(t, grid.Empty())

	h.send(t, runeKey('r'))
	h.frame(t)

	grid = h.game.Grid()
	assert.True(t, grid.Empty())
	require.Len(t, h.saver.saved, 1)
	assert.Equal(t, storage.EndRestart, h.saver.saved[0].EndReason)
}

func TestModelResize(t *testing.T) {
	h := newTestHost(t, "")
	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := h.model.View()
	assert.Len(t, strings.Split(view, "\n"), 30)
	assert.Contains(t, view, "Blockfall")
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	h := newTestHost(t, dir)

	h.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	data, err := os.ReadFile(filepath.Join(dir, "blockfall_20260102_030405.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Blockfall")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(6, 0, "red", core.ColorRed)
	s.SetColored(0, 1, '█', core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "plain")
	assert.Contains(t, lines[0], "red")
	assert.Contains(t, lines[1], "█")
}
