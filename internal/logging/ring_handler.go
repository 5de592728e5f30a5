package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Entry is one captured log record, kept for the ops endpoint.
type Entry struct {
	Timestamp time.Time         `json:"timestamp"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	Attrs     map[string]string `json:"attrs,omitempty"`
}

// RingHandler is an slog.Handler that keeps the most recent WARN+ records in a
// bounded in-memory ring so recent problems stay inspectable without any
// durable log sink.
type RingHandler struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

func NewRingHandler(size int) *RingHandler {
	if size < 1 {
		size = 1
	}
	return &RingHandler{entries: make([]Entry, size)}
}

// Enabled only handles WARN and above.
func (h *RingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *RingHandler) Handle(_ context.Context, record slog.Record) error {
	entry := Entry{
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}
	record.Attrs(func(a slog.Attr) bool {
		if entry.Attrs == nil {
			entry.Attrs = make(map[string]string)
		}
		entry.Attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	h.entries[h.next] = entry
	h.next++
	if h.next == len(h.entries) {
		h.next = 0
		h.full = true
	}
	h.mu.Unlock()
	return nil
}

// Recent returns the captured records, oldest first.
func (h *RingHandler) Recent() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.full {
		out := make([]Entry, h.next)
		copy(out, h.entries[:h.next])
		return out
	}
	out := make([]Entry, 0, len(h.entries))
	out = append(out, h.entries[h.next:]...)
	out = append(out, h.entries[:h.next]...)
	return out
}

func (h *RingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *RingHandler) WithGroup(name string) slog.Handler {
	return h
}
