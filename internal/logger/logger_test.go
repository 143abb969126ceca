package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONOutputCarriesComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Component("export").Infof("wrote %d bytes", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "export", entry["component"])
	require.Equal(t, "wrote 42 bytes", entry["message"])
	require.Equal(t, "info", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Infof("dropped")
	require.Zero(t, buf.Len())

	log.Error(errors.New("boom"), "kept")
	require.Contains(t, buf.String(), "boom")
}

func TestInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "shouting"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Infof("no panic")
	log.Component("x").Error(nil, "still fine")
}
