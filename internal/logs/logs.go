// Package logs provides the process-wide structured logger. It layers a
// small vocabulary of syslog-style levels — Notice, Critical, Alert,
// Emergency — on top of the standard library's log/slog, between and above
// the stock Info/Warn/Error levels.
package logs

import (
	"context"
	"log/slog"
	"os"
)

// Custom levels, interleaved with the stock slog levels (Debug=-4, Info=0,
// Warn=4, Error=8) so that sorting by level still reflects severity order.
const (
	LevelNotice    = slog.Level(2)
	LevelCritical  = slog.Level(12)
	LevelAlert     = slog.Level(16)
	LevelEmergency = slog.Level(20)
)

func levelName(l slog.Level) string {
	switch l {
	case LevelNotice:
		return "NOTICE"
	case LevelCritical:
		return "CRITICAL"
	case LevelAlert:
		return "ALERT"
	case LevelEmergency:
		return "EMERGENCY"
	default:
		return l.String()
	}
}

// replaceLevel renders the LevelKey attribute through levelName so custom
// levels print their own name instead of slog's generic "LEVEL(n)".
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(levelName(lvl))
		}
	}
	return a
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level:       slog.LevelInfo,
	ReplaceAttr: replaceLevel,
}))

// Default returns the process-wide logger.
func Default() *slog.Logger { return logger }

// SetDefault replaces the process-wide logger, for tests or alternate
// output sinks.
func SetDefault(l *slog.Logger) { logger = l }

func Notice(ctx context.Context, msg string, args ...any) {
	logger.Log(ctx, LevelNotice, msg, args...)
}

func Critical(ctx context.Context, msg string, args ...any) {
	logger.Log(ctx, LevelCritical, msg, args...)
}

func Alert(ctx context.Context, msg string, args ...any) {
	logger.Log(ctx, LevelAlert, msg, args...)
}

func Emergency(ctx context.Context, msg string, args ...any) {
	logger.Log(ctx, LevelEmergency, msg, args...)
}
