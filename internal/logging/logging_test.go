package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readJSONLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestNewWithoutOutputsDiscards(t *testing.T) {
	t.Parallel()

	logger, err := New(Options{})
	require.NoError(t, err)
	defer logger.Close()

	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestNewFansOutToFileAndConsole(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "termfolio.log")
	var console bytes.Buffer

	logger, err := New(Options{Level: slog.LevelInfo, File: path, Console: &console})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("content loaded", "bytes", 42)
	require.NoError(t, logger.Close())

	records := readJSONLines(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, "content loaded", records[0]["msg"])
	assert.Equal(t, "INFO", records[0]["level"])
	assert.EqualValues(t, 42, records[0]["bytes"])

	assert.Contains(t, console.String(), "msg=\"content loaded\"")
	assert.NotContains(t, console.String(), "hidden")
}

func TestNewFailsOnUnwritableLogFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := New(Options{File: filepath.Join(blocker, "termfolio.log")})
	assert.ErrorContains(t, err, "create log directory")
}

func TestToJournalKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"error":            "ERROR",
		"missing_sections": "MISSING_SECTIONS",
		"entry.id":         "ENTRY_ID",
		"bytes2":           "BYTES2",
	}

	for in, want := range tests {
		assert.Equal(t, want, toJournalKey(in), in)
	}
}
