package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  W/Up       - Rotate
  S/Down     - Soft drop (hold)
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so soft drop lasts while the down key
repeats and ends shortly after it stops (controls.soft_drop_hold).

Examples:
  blockfall play
  blockfall play --fps 30
  blockfall play --speed relaxed
  blockfall play --config ./my-blocks.yaml --log-file ./blockfall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Terminal frame rate")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The screen belongs to the game, so logs default to a file.
	var logFile string
	if dir := config.UserDir(); dir != "" {
		logFile = filepath.Join(dir, "blockfall.log")
	}
	logger, closeLog, err := newLogger(io.Discard, logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	rec := tui.NewRecorder(saverOf(store), "tui", logger)

	opts := gameOptions(cfg, runtime.Seed, runtime.FrameDuration())
	opts.OnRoundEnd = func(stats blocks.RoundStats) {
		rec.Record(stats, storage.EndTopOut)
	}
	game := blocks.New(opts)

	logger.Debug("starting terminal game", "seed", runtime.Seed, "fps", runtime.TickRate, "interval", opts.NormalInterval)
	err = tui.Run(game, tui.Options{
		Runtime:       runtime,
		SoftDropHold:  cfg.Controls.Hold(),
		ScreenshotDir: config.UserDir(),
		Recorder:      rec,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// saverOf avoids handing a typed nil store to the recorder.
func saverOf(store *storage.Store) tui.RoundSaver {
	if store == nil {
		return nil
	}
	return store
}
