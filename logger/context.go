package logger

import "context"

type traceKey string

const traceIDKey = traceKey("traceId")

// WithTraceID returns context carrying trace id
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID returns trace id or empty string
func TraceID(ctx context.Context) string {
	if value, ok := ctx.Value(traceIDKey).(string); ok {
		return value
	}
	return ""
}
