package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("ignored %d", 1)
	log.Warn("CreateBooking: slot %s is not available", "2025-06-02-10:00-1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "CreateBooking: slot 2025-06-02-10:00-1 is not available", entry["message"])
}

func TestLogger_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")
	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, log.Close())
	assert.FileExists(t, path)
	assert.NoError(t, log.Close())
}
