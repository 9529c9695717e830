package http

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mind-engage/swiftfood/internal/catalog"
	"github.com/mind-engage/swiftfood/internal/eventlog"
	"github.com/mind-engage/swiftfood/internal/player"
)

// Options configures the game API. Zero values get workable defaults.
type Options struct {
	Players    player.Store
	Catalog    *catalog.Catalog
	Journal    eventlog.Recorder
	Logger     *log.Logger
	ServerName string

	StrictStatus   bool
	CORSOrigins    []string
	MaxInFlight    int
	Backlog        int
	BacklogTimeout time.Duration
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

type api struct {
	players    player.Store
	catalog    *catalog.Catalog
	journal    eventlog.Recorder
	logger     *log.Logger
	serverName string
	rs         responder
}

// NewRouter builds the HTTP handler for the game API.
func NewRouter(opts Options) http.Handler {
	a := &api{
		players:    opts.Players,
		catalog:    opts.Catalog,
		journal:    opts.Journal,
		logger:     opts.Logger,
		serverName: opts.ServerName,
		rs:         responder{strict: opts.StrictStatus},
	}
	if a.players == nil {
		a.players = player.NewInMemoryStore()
	}
	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.journal == nil {
		a.journal = eventlog.Discard{}
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = 10
	}
	if opts.Backlog <= 0 {
		opts.Backlog = 100
	}
	if opts.BacklogTimeout <= 0 {
		opts.BacklogTimeout = 30 * time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(a.logger), recoverJSON(a.rs, a.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     opts.CORSOrigins,
		AllowedMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type"},
		ExposedHeaders:     []string{"Content-Length"},
		MaxAge:             300,
		OptionsPassthrough: true,
	}))
	r.Use(methodGate(a.rs))
	r.Use(rejectAsJSON(a.rs, middleware.ThrottleBacklog(opts.MaxInFlight, opts.Backlog, opts.BacklogTimeout), errServerBusy))
	r.Use(rejectAsJSON(a.rs, middleware.Timeout(opts.RequestTimeout), errTimedOut))

	notFound := func(w http.ResponseWriter, _ *http.Request) { a.rs.error(w, errNotFound) }
	r.NotFound(notFound)
	// A known method on a path without that route is reported as a missing route.
	r.MethodNotAllowed(notFound)

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/health", a.healthHandler())
		ar.Get("/levels", a.listLevelsHandler())

		ar.Route("/player", func(pr chi.Router) {
			pr.With(drainBody(a.rs, opts.MaxBodyBytes)).Post("/", a.createPlayerHandler())
			pr.Get("/{playerID}", a.getPlayerHandler())
			pr.With(drainBody(a.rs, opts.MaxBodyBytes)).Put("/{playerID}", a.updatePlayerHandler())
			pr.Delete("/{playerID}", a.deletePlayerHandler())

			pr.Group(func(mr chi.Router) {
				mr.Use(drainBody(a.rs, opts.MaxBodyBytes))
				mr.Post("/{playerID}/complete-task", a.completeTaskHandler())
				mr.Post("/{playerID}/complete-level", a.completeLevelHandler())
				mr.Post("/{playerID}/achievements/{name}", a.unlockAchievementHandler())
			})
		})
	})
	return r
}

// record appends a journal event. Journal failures never fail the request.
func (a *api) record(ctx context.Context, typ, playerID string, data any) {
	e, err := eventlog.NewEvent(typ, playerID, data)
	if err == nil {
		err = a.journal.Append(ctx, e)
	}
	if err != nil {
		a.logger.Warn("journal append failed", "type", typ, "player", playerID, "err", err)
	}
}
