package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded rounds",
	Long: `Display the most recent rounds from the history database, newest
first, with totals over all rounds.

Examples:
  blockfall history
  blockfall history --limit 50
  blockfall history --browse
  blockfall history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height)
	}

	return printHistory(os.Stdout, store, flagLimit)
}

// printHistory writes a plain table of recent rounds and the totals.
func printHistory(out io.Writer, store *storage.Store, limit int) error {
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet. Play a round to start the history!")
		return nil
	}

	sum, err := store.Summary()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n  Recent rounds (%d of %d)\n\n", len(rounds), sum.Rounds)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tHOST\tPIECES\tROWS\tTICKS\tEND\tDATE")
	for _, r := range rounds {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.ID, r.Host, r.Pieces, r.RowsCleared, r.Ticks, r.EndReason,
			r.CreatedAt.Format("Jan 02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n  Total: %d pieces, %d rows. Best round: %d rows.\n\n",
		sum.TotalPieces, sum.TotalRows, sum.BestRows)
	return nil
}
