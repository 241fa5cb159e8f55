// Package slogobs provides ready-made slog loggers for use with the
// observability context helpers: a compact single-line development format
// and standard JSON for production, selectable through the
// OUTPUTVIEW_LOG_FORMAT environment variable.
package slogobs
