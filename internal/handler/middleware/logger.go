package middleware

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Logger owns the process slog handler and the access log middleware built on it.
type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg config.LogConfig, out io.Writer) *Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if t, ok := a.Value.Any().(time.Time); ok && a.Key == slog.TimeKey {
				a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if cfg.Format == "json" || (cfg.Format == "" && gin.Mode() == gin.ReleaseMode) {
		handler = slog.NewJSONHandler(out, opts)
	}

	return &Logger{logger: slog.New(handler), timezone: zone}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}
