package pkg

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type LogLevel string

const (
	LogLevelNone    LogLevel = "none"
	LogLevelErrOnly LogLevel = "error"
	LogLevelWarn    LogLevel = "warn"
	LogLevelInfo    LogLevel = "info"
	LogLevelDebug   LogLevel = "debug"
)

var VALID_LOG_LEVELS = []LogLevel{
	LogLevelNone, LogLevelErrOnly, LogLevelWarn, LogLevelInfo, LogLevelDebug,
}

var log_level = &slog.LevelVar{}

func (l LogLevel) IsValid() bool {
	for _, v := range VALID_LOG_LEVELS {
		if v == l {
			return true
		}
	}
	return false
}

// SlogLevel maps the level onto slog. LogLevelNone maps above every level
// slog emits so nothing gets through.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelErrOnly:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// SetLogLevel installs a tinted stderr logger as the slog default.
func SetLogLevel(level LogLevel) {
	log_level.Set(level.SlogLevel())
	slog.SetDefault(slog.New(NewLogHandler(os.Stderr)))
	slog.Debug("log level set", "level", string(level))
}

// NewLogHandler returns a tint handler writing to f. Colors are only used
// when f is a terminal.
func NewLogHandler(f *os.File) slog.Handler {
	var w io.Writer = f
	no_color := !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	if !no_color {
		w = colorable.NewColorable(f)
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      log_level,
		TimeFormat: time.TimeOnly,
		NoColor:    no_color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
				return slog.Attr{}
			}
			return a
		},
	})
}
