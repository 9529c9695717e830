package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one line per request after it completes.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"dur", time.Since(start),
					"req_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// recoverJSON turns a handler panic into the internal error payload.
func recoverJSON(rs responder, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logger.Error("handler panic", "method", r.Method, "path", r.URL.Path, "panic", rvr)
				rs.error(w, internalError(fmt.Sprint(rvr)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// methodGate answers OPTIONS with an empty object and rejects methods the API never serves.
// Known methods on unknown paths fall through to the router and get "Not found".
func methodGate(rs responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
				next.ServeHTTP(w, r)
			case http.MethodOptions:
				rs.ok(w, struct{}{})
			default:
				rs.error(w, errMethodNotAllowed)
			}
		})
	}
}

// drainBody reads and discards the request body up to limit bytes.
// Bodies carry no data the handlers use.
func drainBody(rs responder, limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				body := http.MaxBytesReader(w, r.Body, limit)
				if _, err := io.Copy(io.Discard, body); err != nil {
					rs.error(w, errBadBody)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// guardWriter sits between a chi middleware and the handler it wraps. Writes made
// while the handler runs pass through; anything the middleware writes on its own
// (throttle rejection, timeout status) is held back so it can be re-sent as JSON.
type guardWriter struct {
	http.ResponseWriter
	inside  bool
	wrote   bool
	blocked int
	scratch http.Header
}

func (g *guardWriter) Header() http.Header {
	if g.inside {
		return g.ResponseWriter.Header()
	}
	if g.scratch == nil {
		g.scratch = http.Header{}
	}
	return g.scratch
}

func (g *guardWriter) WriteHeader(code int) {
	if g.inside {
		g.wrote = true
		g.ResponseWriter.WriteHeader(code)
		return
	}
	if g.blocked == 0 {
		g.blocked = code
	}
}

func (g *guardWriter) Write(b []byte) (int, error) {
	if g.inside {
		g.wrote = true
		return g.ResponseWriter.Write(b)
	}
	if g.blocked == 0 {
		g.blocked = http.StatusOK
	}
	return len(b), nil
}

// rejectAsJSON runs mw but answers with e through the responder whenever mw writes
// a response itself and the handler has not already written one.
func rejectAsJSON(rs responder, mw func(http.Handler) http.Handler, e apiError) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g, ok := w.(*guardWriter)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			g.inside = true
			defer func() { g.inside = false }()
			next.ServeHTTP(g, r)
		}))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g := &guardWriter{ResponseWriter: w}
			guarded.ServeHTTP(g, r)
			if g.blocked != 0 && !g.wrote {
				rs.error(w, e)
			}
		})
	}
}
