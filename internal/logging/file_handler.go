package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type logEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Attrs     map[string]interface{} `json:"attrs,omitempty"`
}

// FileHandler is an slog.Handler that batches ERROR+ records to a dated JSONL
// file, so server errors survive restarts without a database.
type FileHandler struct {
	dir    string
	mu     sync.Mutex
	buffer []logEntry
	ticker *time.Ticker
	done   chan struct{}
}

func NewFileHandler(dir string) *FileHandler {
	h := &FileHandler{
		dir:    dir,
		buffer: make([]logEntry, 0, 50),
		ticker: time.NewTicker(5 * time.Second),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *FileHandler) flushLoop() {
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *FileHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]logEntry, 0, 50)
	h.mu.Unlock()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		slog.Info("failed to create log dir", "error", err)
		return
	}

	name := filepath.Join(h.dir, "errors-"+time.Now().UTC().Format("2006-01-02")+".log")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Info("failed to open error log", "error", err, "count", len(batch))
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, entry := range batch {
		if err := enc.Encode(entry); err != nil {
			slog.Info("failed to write error log", "error", err)
			return
		}
	}
}

func (h *FileHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
}

// Enabled only handles ERROR and above.
func (h *FileHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *FileHandler) Handle(_ context.Context, record slog.Record) error {
	entry := logEntry{
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	attrs := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	if len(attrs) > 0 {
		entry.Attrs = attrs
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= 50
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *FileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *FileHandler) WithGroup(name string) slog.Handler {
	return h
}
