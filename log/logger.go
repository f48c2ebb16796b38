package log

import "context"

// Logger is the application-wide structured logging interface. Repositories
// and services log through zerolog directly; this interface exists for the
// entrypoints and anything that must stay decoupled from a concrete backend.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...map[string]interface{})
	Info(ctx context.Context, msg string, fields ...map[string]interface{})
	Warn(ctx context.Context, msg string, fields ...map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	Fatal(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	// With returns a new logger carrying the extra structured fields.
	With(fields map[string]interface{}) Logger
}
