package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// New creates a logger writing to w in the given format at the given level.
func New(w io.Writer, level slog.Leveler, format Format) *slog.Logger {
	switch format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	default:
		return slog.New(NewCompactHandler(w, level))
	}
}

// NewFromEnv creates a logger writing to w at the given level, with the
// format taken from the environment (see GetFormatFromEnv).
func NewFromEnv(w io.Writer, level slog.Leveler) *slog.Logger {
	return New(w, level, GetFormatFromEnv())
}

// CompactHandler is a slog.Handler that renders each record on a single
// line: timestamp, level, message, then any attributes as one JSON object.
type CompactHandler struct {
	w      io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
}

// NewCompactHandler creates a CompactHandler writing to w at the given level.
func NewCompactHandler(w io.Writer, level slog.Leveler) *CompactHandler {
	return &CompactHandler{
		w:     w,
		level: level,
		mu:    &sync.Mutex{},
	}
}

// Enabled reports whether records at the given level are logged.
func (h *CompactHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

// Handle writes one record.
func (h *CompactHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]any, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		// Stored attrs carry their final key; groups were applied when
		// they were added.
		attrs[attr.Key] = attr.Value.Resolve().Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[h.attrKey(attr.Key)] = attr.Value.Resolve().Any()
		return true
	})

	line := fmt.Sprintf("%s %s %s",
		record.Time.Format("2006-01-02 15:04:05"),
		record.Level.String(),
		record.Message,
	)
	if len(attrs) > 0 {
		encoded, err := json.Marshal(attrs)
		if err != nil {
			encoded = []byte(fmt.Sprintf("%v", attrs))
		}
		line += " → " + string(encoded)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, line)
	return err
}

// WithAttrs returns a handler that includes the given attributes on every
// record.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.attrKey(attr.Key), Value: attr.Value})
	}
	return &clone
}

// WithGroup returns a handler that prefixes attribute keys with the group
// name.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *CompactHandler) attrKey(key string) string {
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}
	return key
}
