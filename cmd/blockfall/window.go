package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/desktop"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  W/Up       - Rotate
  S/Down     - Soft drop while held
  P/Esc      - Pause
  R          - Restart
  Q          - Quit

Window size and update rate come from the window section of the config.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	rec := tui.NewRecorder(saverOf(store), "window", logger)

	// The window feeds measured wall time, so no frame duration is set.
	opts := gameOptions(cfg, resolveSeed(), 0)
	opts.OnRoundEnd = func(stats blocks.RoundStats) {
		rec.Record(stats, storage.EndTopOut)
	}
	game := blocks.New(opts)

	return desktop.Run(cmd.Context(), game, desktop.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Margin: cfg.Window.Margin,
		TPS:    cfg.Window.TPS,
		Logger: logger,
		OnRoundEnd: func(stats blocks.RoundStats, reason string) {
			rec.Record(stats, reason)
		},
	})
}
