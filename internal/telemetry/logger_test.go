package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock handler to inspect log records
type mockHandler struct {
	mu      sync.Mutex
	records []slog.Record
	attrs   []slog.Attr
	group   string
	enabled bool
}

func (h *mockHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &mockHandler{enabled: h.enabled, attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...), group: h.group}
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	return &mockHandler{enabled: h.enabled, attrs: h.attrs, group: name}
}

func (h *mockHandler) getRecords() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records
}

func TestMultiHandler(t *testing.T) {
	h1 := &mockHandler{enabled: true}
	h2 := &mockHandler{enabled: false}
	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	t.Run("Enabled", func(t *testing.T) {
		assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))
		off := &multiHandler{handlers: []slog.Handler{h2}}
		assert.False(t, off.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("Handle skips disabled handlers", func(t *testing.T) {
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
		require.NoError(t, multi.Handle(context.Background(), record))
		require.Len(t, h1.getRecords(), 1)
		assert.Empty(t, h2.getRecords())
		assert.Equal(t, "test message", h1.getRecords()[0].Message)
	})

	t.Run("WithAttrs", func(t *testing.T) {
		attrs := []slog.Attr{slog.String("dataset", "random")}
		newMulti, ok := multi.WithAttrs(attrs).(*multiHandler)
		require.True(t, ok)
		for _, h := range newMulti.handlers {
			assert.Equal(t, attrs, h.(*mockHandler).attrs)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		newMulti, ok := multi.WithGroup("run").(*multiHandler)
		require.True(t, ok)
		for _, h := range newMulti.handlers {
			assert.Equal(t, "run", h.(*mockHandler).group)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer := NewLogger(&buf, false, "")
		defer closer.Close()
		logger.Debug("hidden")
		logger.Info("shown", "n", 100)
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown n=100")

		buf.Reset()
		logger, _ = NewLogger(&buf, true, "")
		logger.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("File logging", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sortbench.log")
		var buf bytes.Buffer
		logger, closer := NewLogger(&buf, false, path)
		logger.Info("file message", "dataset", "random")
		require.NoError(t, closer.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var entry map[string]any
		require.NoError(t, json.Unmarshal(content, &entry))
		assert.Equal(t, "file message", entry["msg"])
		assert.Equal(t, "random", entry["dataset"])
		assert.Contains(t, buf.String(), "file message")
	})

	t.Run("No handlers", func(t *testing.T) {
		logger, closer := NewLogger(nil, false, "")
		assert.NotNil(t, logger)
		assert.NoError(t, closer.Close())
		logger.Info("this goes nowhere")
	})
}

func TestNewLogger_FileError(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	invalidPath := filepath.Join(t.TempDir(), "nonexistent/test.log")
	logger, _ := NewLogger(nil, false, invalidPath)
	assert.NotNil(t, logger)
	assert.True(t, strings.Contains(buf.String(), "Failed to open log file"), "Expected log file error message, got: "+buf.String())
}
