package logging

import (
	"context"
	"runtime/debug"
)

// LogPanic records a recovered panic with its stack trace. Call it from a
// deferred function after recover() returned a non-nil value.
func LogPanic(ctx context.Context, where string, r any) {
	FromContext(ctx).Error().
		Str("where", where).
		Interface("panic", r).
		Bytes("stack", debug.Stack()).
		Msg("recovered from panic")
}
