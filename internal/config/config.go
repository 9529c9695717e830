package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultServerName = "SwiftFood Server v1.0"

type Config struct {
	HTTPAddr   string
	ServerName string

	// StrictStatus sends the logical error code as the HTTP status.
	// When false every response goes out as 200 and clients read "code" from the body.
	StrictStatus bool

	CORSOrigins []string

	MaxInFlight     int
	Backlog         int
	BacklogTimeout  time.Duration
	RequestTimeout  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	CatalogPath string // empty = embedded catalog

	JournalDriver string // ""|sqlite|postgres
	JournalDSN    string

	LogLevel  string
	LogFormat string // text|json|logfmt
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:        addr,
		ServerName:      envOr("SERVER_NAME", DefaultServerName),
		StrictStatus:    envBool("STRICT_STATUS", false),
		CORSOrigins:     csvOr("CORS_ORIGINS", "*"),
		MaxInFlight:     envInt("MAX_IN_FLIGHT", 10),
		Backlog:         envInt("BACKLOG", 100),
		BacklogTimeout:  envDuration("BACKLOG_TIMEOUT", 30*time.Second),
		RequestTimeout:  envDuration("REQUEST_TIMEOUT", 30*time.Second),
		ReadTimeout:     envDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 35*time.Second),
		IdleTimeout:     envDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    int64(envInt("MAX_BODY_BYTES", 1<<20)),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		JournalDriver:   os.Getenv("JOURNAL_DRIVER"),
		JournalDSN:      os.Getenv("JOURNAL_DSN"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		LogFormat:       envOr("LOG_FORMAT", "text"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// envDuration accepts Go durations ("30s") or a bare number of seconds.
func envDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
