package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/viant/xdatly/handler/exec"
	"github.com/viant/xdatly/handler/logger"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// Logger represents a leveled structured logger shared with datly handlers
type Logger = logger.Logger

type slogger struct {
	logger *slog.Logger
	level  slog.Level
}

// New creates a structured logger using the JSON handler, dest defaults to stdout.
func New(level string, dest io.Writer) Logger {
	if dest == nil {
		dest = os.Stdout
	}
	logLevel := ParseLevel(level)
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	return &slogger{logger: slog.New(handler), level: logLevel}
}

// Default returns WARN level logger writing to stderr
func Default() Logger {
	level := os.Getenv("AUTOFILL_LOG_LEVEL")
	if level == "" {
		level = WARN
	}
	return New(level, os.Stderr)
}

// ParseLevel maps level name to slog level, unknown names map to INFO
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (s *slogger) IsDebugEnabled() bool {
	return s.level.Level() <= slog.LevelDebug
}

func (s *slogger) IsInfoEnabled() bool {
	return s.level.Level() <= slog.LevelInfo
}

func (s *slogger) IsWarnEnabled() bool {
	return s.level.Level() <= slog.LevelWarn
}

func (s *slogger) IsErrorEnabled() bool {
	return s.level.Level() <= slog.LevelError
}

func (s *slogger) isEnabled(level slog.Level) bool {
	return s.level.Level() <= level
}

// getCallerInfo extracts the caller's function, file and line.
func (s *slogger) getCallerInfo() []any {
	callers := make([]uintptr, 1)
	if count := runtime.Callers(4, callers[:]); count == 0 {
		return nil
	}
	frame, _ := runtime.CallersFrames(callers).Next()
	return []any{"function", frame.Function, "file", frame.File, "line", frame.Line}
}

func (s *slogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if !s.isEnabled(level) {
		return
	}
	values := s.getCallerInfo()
	values = append(values, s.getContextValues(ctx)...)
	values = append(values, args...)
	s.logger.Log(context.Background(), level, msg, values...)
}

// getContextValues retrieves trace ids from the context, either set with WithTraceID or carried by a datly exec context.
func (s *slogger) getContextValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var values []any
	if traceID := TraceID(ctx); traceID != "" {
		values = append(values, "traceId", traceID)
	}
	if execContext := exec.GetContext(ctx); execContext != nil {
		traceID := "unknown"
		if execContext.TraceID != "" {
			traceID = execContext.TraceID
		} else if execContext.Trace != nil {
			traceID = execContext.Trace.TraceID
		}
		values = append(values, "reqTraceId", traceID)
	}
	return values
}

// Debug wraps a call to slog.Debug, inserting details for the calling function.
func (s *slogger) Debug(msg string, args ...any) {
	s.log(context.Background(), slog.LevelDebug, msg, args)
}

// Info wraps a call to slog.Info, inserting details for the calling function.
func (s *slogger) Info(msg string, args ...any) {
	s.log(context.Background(), slog.LevelInfo, msg, args)
}

// Warn wraps a call to slog.Warn, inserting details for the calling function.
func (s *slogger) Warn(msg string, args ...any) {
	s.log(context.Background(), slog.LevelWarn, msg, args)
}

// Error wraps a call to slog.Error, inserting details for the calling function.
func (s *slogger) Error(msg string, args ...any) {
	s.log(context.Background(), slog.LevelError, msg, args)
}

// Debugc logs at debug level with trace id taken from the context
func (s *slogger) Debugc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

// Infoc logs at info level with trace id taken from the context
func (s *slogger) Infoc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

// Infos logs redacted attributes at info level
func (s *slogger) Infos(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.log(ctx, slog.LevelInfo, msg, redactAttrs(attrs...))
}

// Debugs logs redacted attributes at debug level
func (s *slogger) Debugs(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.log(ctx, slog.LevelDebug, msg, redactAttrs(attrs...))
}

// DebugJSONc logs obj encoded as JSON appended to the message, sensitive top level keys are masked.
func (s *slogger) DebugJSONc(ctx context.Context, msg string, obj any) {
	if !s.IsDebugEnabled() {
		return
	}
	data, err := json.Marshal(redactValue(obj))
	if err != nil {
		return
	}
	s.log(ctx, slog.LevelDebug, fmt.Sprintf("%s %s", msg, data), nil)
}

// Warnc logs at warn level with trace id taken from the context
func (s *slogger) Warnc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

// Errorc logs at error level with trace id taken from the context
func (s *slogger) Errorc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}

// Warns logs redacted attributes at warn level
func (s *slogger) Warns(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.log(ctx, slog.LevelWarn, msg, redactAttrs(attrs...))
}

// Errors logs redacted attributes at error level
func (s *slogger) Errors(ctx context.Context, msg string, attrs ...slog.Attr) {
	s.log(ctx, slog.LevelError, msg, redactAttrs(attrs...))
}

// redactValue masks sensitive keys of a JSON object representation of value.
func redactValue(value any) any {
	data, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var aMap map[string]any
	if err = json.Unmarshal(data, &aMap); err != nil {
		return value
	}
	for key := range aMap {
		if isSensitiveKey(key) {
			aMap[key] = "[REDACTED]"
		}
	}
	return aMap
}

// redactAttrs masks attributes with sensitive keys.
func redactAttrs(attrs ...slog.Attr) []any {
	var result []any
	for _, attr := range attrs {
		if isSensitiveKey(attr.Key) {
			result = append(result, slog.String(attr.Key, "[REDACTED]"))
			continue
		}
		result = append(result, attr)
	}
	return result
}

// isSensitiveKey returns true if the key is known to contain sensitive data.
func isSensitiveKey(key string) bool {
	sensitiveKeys := []string{
		"authorization", "token", "apikey", "password",
		"credential", "secret", "access_key", "secret_key",
	}
	key = strings.ToLower(key)
	for _, sk := range sensitiveKeys {
		if key == sk {
			return true
		}
	}
	return false
}
