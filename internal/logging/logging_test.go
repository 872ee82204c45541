package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "info"})
	require.NoError(t, err)

	ledgerLog := Component(log, "ledger")
	ledgerLog.Info().Int64("amount", 75000).Msg("appended")
	log.Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "ledger", rec["component"])
	assert.Equal(t, "appended", rec["message"])
	assert.EqualValues(t, 75000, rec["amount"])
	assert.Contains(t, rec, "time")
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{})
	require.NoError(t, err)

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	log.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "DEBUG", Console: true})
	require.NoError(t, err)

	log.Debug().Str("screen", "home").Msg("navigate")
	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "navigate")
	assert.Contains(t, out, "screen=home")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
}
