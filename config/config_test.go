package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	cfg, err := Init(os.Stderr)
	require.NoError(t, err)
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestLoadNotInitialized(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config"))
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestLoadPopulatesUnsetStreamValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(`{"Stream":{"CacheBlocks":4}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Stream.CacheBlocks)
	require.EqualValues(t, defaultBlockSize, cfg.Stream.BlockSize)
	require.Equal(t, defaultReadBufferSize, cfg.Stream.ReadBufferSize)
	require.Equal(t, defaultRateBurst, cfg.Stream.RateBurst)
	require.Zero(t, cfg.Stream.RateLimit)
}

func TestPathRootHonorsEnvDir(t *testing.T) {
	t.Setenv(EnvDir, "/tmp/meter-test-root")
	root, err := PathRoot()
	require.NoError(t, err)
	require.Equal(t, "/tmp/meter-test-root", root)

	file, err := Filename("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/meter-test-root", DefaultConfigFile), file)
}
