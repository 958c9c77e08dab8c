package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// NopLogger returns a logger that discards all output
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogRecorder keeps the JSON lines written by a CaptureLogger
type LogRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (r *LogRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// Entries decodes every record written so far
func (r *LogRecorder) Entries() []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(r.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Find returns the first record with the given message, or nil
func (r *LogRecorder) Find(msg string) map[string]any {
	for _, entry := range r.Entries() {
		if entry[slog.MessageKey] == msg {
			return entry
		}
	}
	return nil
}

// CaptureLogger returns a debug-level JSON logger and the recorder behind it
func CaptureLogger() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	handler := slog.NewJSONHandler(rec, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), rec
}
