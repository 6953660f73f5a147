package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger := NewLogger(LoggerOptions{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	logger := NewLogger(LoggerOptions{Level: "error", Format: "json", Verbose: true})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	logger.WithComponent("runner").WithRepo("widget").Info().Msg("processing")

	out := buf.String()
	assert.Contains(t, out, `"component":"runner"`)
	assert.Contains(t, out, `"repo":"widget"`)
	assert.Contains(t, out, `"message":"processing"`)
}
