package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mind-engage/swiftfood/internal/config"
	"github.com/mind-engage/swiftfood/internal/eventlog"
)

var eventsLimit int

var eventsCmd = &cobra.Command{
	Use:   "events <player-id>",
	Short: "Print a player's recent journal events",
	Long: `Print the newest progression events recorded for a player, newest first.
Needs the same journal settings the server ran with.

Examples:
  swiftfood events player_1f2e --journal-driver sqlite --journal-dsn file:events.db
  JOURNAL_DRIVER=postgres swiftfood events player_1f2e --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listEvents(cmd.Context(), cfg, args[0], eventsLimit, cmd.OutOrStdout())
	},
}

func init() {
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 50, "Maximum events to print")
	eventsCmd.Flags().StringVar(&cfg.JournalDriver, "journal-driver", cfg.JournalDriver, "Activity journal driver (sqlite|postgres)")
	eventsCmd.Flags().StringVar(&cfg.JournalDSN, "journal-dsn", cfg.JournalDSN, "Activity journal DSN")
}

var errNoJournal = errors.New("no journal configured: set --journal-driver or JOURNAL_DRIVER")

func listEvents(ctx context.Context, cfg config.Config, playerID string, limit int, w io.Writer) error {
	if cfg.JournalDriver == "" {
		return errNoJournal
	}
	dbh, err := openJournal(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbh.Close()

	events, err := eventlog.NewEventRepo(dbh).Recent(ctx, playerID, limit)
	if err != nil {
		return err
	}
	printEvents(w, playerID, events)
	return nil
}

func printEvents(w io.Writer, playerID string, events []eventlog.Event) {
	if len(events) == 0 {
		fmt.Fprintf(w, "no events for %s\n", playerID)
		return
	}
	for _, e := range events {
		at := time.Unix(e.CreatedAt, 0).UTC().Format(time.RFC3339)
		fmt.Fprintf(w, "#%d %s %-20s %s\n", e.Seq, at, e.Type, e.DataJSON)
	}
}
