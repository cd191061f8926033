package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-solver/solver/contrib/lu"
)

func TestLoadConfigFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
size: 512
lanes: 8
dtype: float32
log_level: debug
`), 0o644))

	cfg := loadConfigFrom(path)
	require.NotNil(t, cfg.Size)
	require.EqualValues(t, 512, *cfg.Size)
	require.NotNil(t, cfg.Lanes)
	require.EqualValues(t, 8, *cfg.Lanes)
	require.Nil(t, cfg.Runs)
	require.Equal(t, "float32", cfg.Dtype)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromMissing(t *testing.T) {
	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Equal(t, Config{}, cfg)

	require.Equal(t, Config{}, loadConfigFrom(""))
}

func TestLoadConfigFromMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [not a number"), 0o644))

	require.Equal(t, Config{}, loadConfigFrom(path))
}

func TestDiagDominantResidual(t *testing.T) {
	src := diagDominant[float64](8, 8, 3)
	require.Len(t, src, 64)

	f := append([]float64(nil), src...)
	require.Zero(t, lu.Getrf(f, 8, 8, 8, 2))
	require.Less(t, residual(src, f, 8, 8), 1e-12)
}
