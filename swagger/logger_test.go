package swagger

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.With("component", "test").Warn("something happened", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, `msg="something happened"`)
}

func TestNewSlogAdapterNil(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil).logger)
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.With("a", 1).Error("ignored")
	})
}

func TestRegistryLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	reg, r := newTestRegistry(t, Config{Logger: logger})
	reg.Route(r.HandleFunc("/pets", noop).Methods(http.MethodGet)).Validation(nil)
	reg.Route(r.HandleFunc("/pets", noop).Methods(http.MethodGet)).Validation(nil)
	reg.Route(r.HandleFunc("/nomethod", noop)).Validation(nil)
	require.NoError(t, reg.LoadRoutes())

	out := buf.String()
	assert.Contains(t, out, `msg="swagger registry configured"`)
	assert.Contains(t, out, `msg="swagger resource created" path=/swagger/pets`)
	assert.Contains(t, out, `msg="duplicate route ignored" method=GET path=/pets`)
	assert.Contains(t, out, `msg="documented route has no methods, skipping" path=/nomethod`)
}
