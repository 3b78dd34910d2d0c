package logging

import "context"

type contextKey struct{}

// WithLogData attaches a LogData to the context so handlers further down
// the stack can record timings and fields against the current request.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, contextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when none is attached.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(contextKey{}).(*LogData)
	return logData
}
