// Package testutils provides shared helpers for tests.
package testutils

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// LogEntry is a flattened log record. Attributes added with Logger.With are
// included alongside the record's own attributes.
type LogEntry map[string]any

// Message returns the record message.
func (e LogEntry) Message() string {
	msg, _ := e["message"].(string)
	return msg
}

// LogCapture is a memory-backed slog.Handler for asserting on log output.
// It records every level.
type LogCapture struct {
	state *captureState
	attrs []slog.Attr
}

type captureState struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogCapture returns a handler and a logger writing to it.
func NewLogCapture() (*LogCapture, *slog.Logger) {
	h := &LogCapture{state: &captureState{}}
	return h, slog.New(h)
}

// Enabled satisfies slog.Handler.
func (h *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Resolve().Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Resolve().Any()
		return true
	})

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.entries = append(h.state.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler. Derived handlers share the same entries.
func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &LogCapture{state: h.state, attrs: merged}
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (h *LogCapture) WithGroup(string) slog.Handler {
	return h
}

// Entries returns a copy of all captured entries.
func (h *LogCapture) Entries() []LogEntry {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	result := make([]LogEntry, len(h.state.entries))
	copy(result, h.state.entries)
	return result
}

// Find returns the first entry with the given message.
func (h *LogCapture) Find(message string) (LogEntry, bool) {
	for _, e := range h.Entries() {
		if e.Message() == message {
			return e, true
		}
	}
	return nil, false
}

// Contains reports whether s appears in any message or string attribute.
func (h *LogCapture) Contains(s string) bool {
	for _, e := range h.Entries() {
		for _, v := range e {
			if str, ok := v.(string); ok && strings.Contains(str, s) {
				return true
			}
		}
	}
	return false
}

// Clear resets the captured entries.
func (h *LogCapture) Clear() {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.entries = nil
}
