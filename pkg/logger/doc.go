// Package logger provides a small factory over log/slog with context-based
// attribute injection.
//
// New builds a JSON logger; extractors pull request-scoped values out of the
// context on every log call:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			if id, ok := ctx.Value(requestIDKey).(string); ok {
//				return slog.String("request_id", id), true
//			}
//			return slog.Attr{}, false
//		}),
//	)
//
// NewNope returns a logger that discards everything, useful as a default in
// components where logging is optional.
package logger
