package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", false)
	require.NoError(t, err)

	log.Trace().Msg("hidden")
	log.Debug().Int("cycles", 1000).Msg("search finished")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "search finished", entry["message"])
	assert.EqualValues(t, 1000, entry["cycles"])
	assert.Contains(t, entry, "time")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", true)
	require.NoError(t, err)

	log.Info().Str("winner", "x").Msg("game over")
	out := buf.String()
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "winner=")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", false)
	assert.Error(t, err)
}
