//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edward-ap/jarslim/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: org.joda.time\nlibrary_hint: joda-time\n"), 0644))

	cfg, err := resolveConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "org.joda.time", cfg.Namespace)
}

func TestResolveConfig_ExplicitPathMissing(t *testing.T) {
	// An explicitly supplied path is loaded strictly: no silent fallback to
	// the built-in defaults.
	_, err := resolveConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestResolveConfig_ExplicitPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: [unclosed"), 0644))

	_, err := resolveConfig(path)

	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestResolveConfig_ExplicitPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`namespace: ""`), 0644))

	_, err := resolveConfig(path)

	assert.ErrorIs(t, err, config.ErrNamespaceEmpty)
}

func TestResolveConfig_DefaultLocationFallsBack(t *testing.T) {
	cfg, err := resolveConfig("")

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
}
