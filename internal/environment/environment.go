// Package environment reads treecomp settings from environment variables.
package environment

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelVar is the environment variable controlling log verbosity.
const LogLevelVar = "TREECOMP_LOG_LEVEL"

// GetLogLevel returns the log level configured through the environment.
// Unset or unparseable values fall back to info.
func GetLogLevel() zap.AtomicLevel {
	value := os.Getenv(LogLevelVar)
	if value == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	level, err := zapcore.ParseLevel(value)
	if err != nil {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return zap.NewAtomicLevelAt(level)
}
