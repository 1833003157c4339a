// Package logger backs the kratos log.Logger interface with zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/rs/zerolog"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/conf"
)

var _ log.Logger = (*Logger)(nil)

// Logger writes kratos key/value records through a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from config. Format "console" produces human readable
// output, anything else JSON.
func New(c *conf.Log, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	level, format := "info", "json"
	if c != nil {
		if c.Level != "" {
			level = c.Level
		}
		if c.Format != "" {
			format = c.Format
		}
	}
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return &Logger{zl: zerolog.New(w).Level(parseLevel(level))}
}

// Zerolog exposes the underlying logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Log implements log.Logger.
func (l *Logger) Log(level log.Level, keyvals ...interface{}) error {
	var ev *zerolog.Event
	switch level {
	case log.LevelDebug:
		ev = l.zl.Debug()
	case log.LevelInfo:
		ev = l.zl.Info()
	case log.LevelWarn:
		ev = l.zl.Warn()
	case log.LevelError:
		ev = l.zl.Error()
	case log.LevelFatal:
		// kratos exits on its own after logging fatal
		ev = l.zl.WithLevel(zerolog.FatalLevel)
	default:
		ev = l.zl.Info()
	}
	if ev == nil {
		return nil
	}

	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		switch v := keyvals[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		case fmt.Stringer:
			ev = ev.Str(key, v.String())
		default:
			ev = ev.Interface(key, v)
		}
	}
	ev.Send()
	return nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
