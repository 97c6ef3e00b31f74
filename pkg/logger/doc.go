// Package logger wraps log/slog with a small factory and attribute helpers
// used across socialkit.
//
// New builds a *slog.Logger from functional options (format, level, output,
// static attributes). The attr helpers (Username, PostID, Error, ...) keep
// attribute keys consistent across packages.
package logger
