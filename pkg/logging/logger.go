// Package logging provides structured logging for the dinoball simulation.
// It wraps Go's standard slog package so every entry emitted during a match
// carries the match ID, and keeps physics values readable in JSON output.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// EnvLogLevel selects the minimum log level. Valid values: DEBUG, INFO, WARN, ERROR.
const EnvLogLevel = "DINOBALL_LOG_LEVEL"

// Logger wraps slog.Logger with match ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger writing to stderr at the level from DINOBALL_LOG_LEVEL.
// Stderr keeps stdout free for the terminal renderer.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stderr, getLogLevelFromEnv())
}

// NewLoggerWithWriter creates a JSON logger writing to w at the given level.
func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: roundFloats,
	})
	return &Logger{slog.New(handler)}
}

// LogWithContext logs a message, adding the match ID from ctx when present.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if matchID := GetMatchID(ctx); matchID != "" {
		args = append(args, "match_id", matchID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type matchIDKey struct{}

// WithMatchID adds a match ID to the context, generating one if matchID is empty.
func WithMatchID(ctx context.Context, matchID string) context.Context {
	if matchID == "" {
		matchID = GenerateMatchID()
	}
	return context.WithValue(ctx, matchIDKey{}, matchID)
}

// GetMatchID returns the match ID stored in ctx, or "".
func GetMatchID(ctx context.Context) string {
	if id, ok := ctx.Value(matchIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateMatchID creates a new random match ID.
func GenerateMatchID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func getLogLevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(EnvLogLevel))
}

// ParseLevel maps a level name to a slog.Level. Unknown names give INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// roundFloats trims float attributes to three decimals. Non-finite values
// are written as strings since JSON cannot encode them.
func roundFloats(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindFloat64 {
		return a
	}
	f := a.Value.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return slog.String(a.Key, fmt.Sprint(f))
	}
	return slog.Float64(a.Key, math.Round(f*1000)/1000)
}

// WrapError wraps an error with additional context information.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
