package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	api "github.com/mind-engage/swiftfood/internal/api/http"
	"github.com/mind-engage/swiftfood/internal/catalog"
	"github.com/mind-engage/swiftfood/internal/config"
	"github.com/mind-engage/swiftfood/internal/db"
	"github.com/mind-engage/swiftfood/internal/eventlog"
	"github.com/mind-engage/swiftfood/internal/logging"
	"github.com/mind-engage/swiftfood/internal/player"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the game API server",
	Long: `Start the HTTP API. Players live in memory and are lost on restart.

Examples:
  swiftfood serve                          # listen on :8080
  swiftfood serve --addr :9000 --strict-status
  JOURNAL_DRIVER=sqlite JOURNAL_DSN=file:events.db swiftfood serve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "Listen address (host:port)")
	serveCmd.Flags().BoolVar(&cfg.StrictStatus, "strict-status", cfg.StrictStatus, "Send error codes as HTTP status instead of always 200")
	serveCmd.Flags().IntVar(&cfg.MaxInFlight, "max-in-flight", cfg.MaxInFlight, "Requests handled concurrently")
	serveCmd.Flags().StringVar(&cfg.JournalDriver, "journal-driver", cfg.JournalDriver, "Activity journal driver (sqlite|postgres, empty disables)")
	serveCmd.Flags().StringVar(&cfg.JournalDSN, "journal-dsn", cfg.JournalDSN, "Activity journal DSN")
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	var journal eventlog.Recorder = eventlog.Discard{}
	if cfg.JournalDriver != "" {
		dbh, err := openJournal(ctx, cfg)
		if err != nil {
			return err
		}
		defer dbh.Close()
		journal = eventlog.NewEventRepo(dbh)
	}

	handler := api.NewRouter(api.Options{
		Players:        player.NewInMemoryStore(),
		Catalog:        cat,
		Journal:        journal,
		Logger:         logger,
		ServerName:     cfg.ServerName,
		StrictStatus:   cfg.StrictStatus,
		CORSOrigins:    cfg.CORSOrigins,
		MaxInFlight:    cfg.MaxInFlight,
		Backlog:        cfg.Backlog,
		BacklogTimeout: cfg.BacklogTimeout,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          logger.StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel}),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "server", cfg.ServerName,
			"levels", cat.Len(), "strict_status", cfg.StrictStatus, "journal", cfg.JournalDriver)
		errc <- s.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func openJournal(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Open(ctx, db.Driver(cfg.JournalDriver), cfg.JournalDSN)
}
