// Package logger is a factory for configured *slog.Logger instances with
// selectable format (json/text), level, output and static attributes.
package logger
