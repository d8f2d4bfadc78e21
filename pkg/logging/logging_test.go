package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default_warn", 0, zerolog.WarnLevel},
		{"v_info", 1, zerolog.InfoLevel},
		{"vv_debug", 2, zerolog.DebugLevel},
		{"vvv_trace", 3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogDuration(time.Now(), "scan gamebox tree")
	assert.Contains(t, buf.String(), "scan gamebox tree")
	assert.Contains(t, buf.String(), "duration")
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("gamebox.scanner")
	// The component field is attached at creation; just verify usability.
	logger.Debug().Msg("test message")
	assert.NotNil(t, logger)
}
