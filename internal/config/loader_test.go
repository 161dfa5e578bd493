package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	cfg, err := loader.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromBytes(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	cfg, err := loader.LoadFromBytes([]byte(`
case_insensitive: true
expand_intermediate_segments: true
expand_max_len: 4
exclude_hidden: true
log_level: debug
`))
	require.NoError(t, err)

	assert.True(t, cfg.CaseInsensitive)
	assert.True(t, cfg.ExpandIntermediateSegments)
	assert.Equal(t, 4, cfg.ExpandMaxLen)
	assert.True(t, cfg.ExcludeHidden)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Every matching option must reach the filesystem completer.
	fsCfg := cfg.FilesystemConfig()
	assert.True(t, fsCfg.CaseInsensitive)
	assert.True(t, fsCfg.ExpandIntermediateSegments)
	assert.Equal(t, 4, fsCfg.ExpandIntermediateSegmentsMaxLen)
	assert.True(t, fsCfg.ExcludeHidden)
}

func TestLoadFromBytesMalformed(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	_, err := loader.LoadFromBytes([]byte("log_level: [nope"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map_dash_underscore: true\n"), 0644))

	loader := NewLoader(zap.NewNop())
	cfg, err := loader.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.MapDashUnderscore)
	assert.True(t, cfg.FilesystemConfig().MapDashUnderscore)
}
