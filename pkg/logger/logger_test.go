package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToInfo(t *testing.T) {
	log := New("verbose")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewWithOutput_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("debug", buf)

	log.WithField("report_id", "R0001").Debug("report approved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report approved", entry["message"])
	assert.Equal(t, "R0001", entry["report_id"])
	assert.Equal(t, "debug", entry["level"])
}
