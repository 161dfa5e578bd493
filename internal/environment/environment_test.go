package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected zapcore.Level
	}{
		{name: "unset defaults to info", value: "", expected: zapcore.InfoLevel},
		{name: "debug", value: "debug", expected: zapcore.DebugLevel},
		{name: "warn", value: "warn", expected: zapcore.WarnLevel},
		{name: "garbage falls back to info", value: "loud", expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LogLevelVar, tt.value)
			assert.Equal(t, tt.expected, GetLogLevel().Level())
		})
	}
}
