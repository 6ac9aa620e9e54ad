// blockfall is a falling-block puzzle game for the terminal, the desktop and
// SSH.
//
// Usage:
//
//	blockfall play            - Play in the terminal
//	blockfall window          - Play in a desktop window
//	blockfall serve           - Start SSH server for remote play
//	blockfall history         - Show recorded rounds
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible piece sequence
//	--db <path>          - Set database path (default: ~/.blockfall/history.db)
//	--config <path>      - Load a custom YAML config
//	--speed <preset>     - relaxed, normal, brisk or fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSpeed    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - stack falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game. Steer the falling piece,
fill whole rows to clear them and keep the stack below the top.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Show recorded rounds

Examples:
  blockfall play
  blockfall play --speed brisk --seed 42
  blockfall window
  blockfall serve --ssh :2222
  blockfall history --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: relaxed, normal, brisk, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger builds the process logger. Logs go to --log-file, else to
// defaultFile when set, else to fallback. The returned closer must be
// called on exit.
func newLogger(fallback io.Writer, defaultFile string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		path = defaultFile
	}

	out := fallback
	closer := func() {}
	if path != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig reads the config chain and applies --speed.
func loadConfig() (config.BlocksConfig, error) {
	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return config.BlocksConfig{}, err
	}
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return config.BlocksConfig{}, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// gameOptions maps the loaded config to game options.
func gameOptions(cfg config.BlocksConfig, seed int64, frame time.Duration) blocks.Options {
	return blocks.Options{
		NormalInterval: cfg.Timing.Interval(),
		SpeedUpDivider: cfg.Timing.SpeedUpDivider,
		FrameDuration:  frame,
		Seed:           seed,
		Style: blocks.Style{
			TileWidth: cfg.Render.TileWidth,
			Filled:    cfg.Render.FilledRune(),
			Empty:     cfg.Render.EmptyRune(),
			Preview:   cfg.Render.QueuePreview,
		},
	}
}

// openStore opens the history database. A failure is logged and play goes
// on without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
