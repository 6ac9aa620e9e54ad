package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// RoundSaver persists finished rounds. *storage.Store implements it.
type RoundSaver interface {
	SaveRound(r storage.RoundRecord) (int64, error)
}

// Recorder logs finished rounds and stores them when a saver is set.
// A nil Recorder records nothing.
type Recorder struct {
	saver  RoundSaver
	host   string
	logger *log.Logger
}

// NewRecorder creates a recorder for the given host name. saver may be nil
// when no history database is available.
func NewRecorder(saver RoundSaver, host string, logger *log.Logger) *Recorder {
	return &Recorder{saver: saver, host: host, logger: logger}
}

// Record stores one round. Rounds that end without a top-out are kept only
// when at least one piece locked.
func (r *Recorder) Record(stats blocks.RoundStats, reason string) {
	if r == nil {
		return
	}
	if reason != storage.EndTopOut && stats.Pieces == 0 {
		return
	}

	if r.logger != nil {
		r.logger.Info("round ended",
			"host", r.host,
			"reason", reason,
			"pieces", stats.Pieces,
			"rows", stats.Rows,
			"ticks", stats.Ticks,
		)
	}
	if r.saver == nil {
		return
	}

	_, err := r.saver.SaveRound(storage.RoundRecord{
		Host:        r.host,
		Pieces:      stats.Pieces,
		RowsCleared: stats.Rows,
		Ticks:       stats.Ticks,
		EndReason:   reason,
	})
	if err != nil && r.logger != nil {
		r.logger.Warn("could not save round", "error", err)
	}
}
