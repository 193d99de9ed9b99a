package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, uint(3), cfg.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, uint(3), cfg.ReadRetries)
	assert.Equal(t, 4, cfg.MaxWorkers)
	assert.True(t, cfg.VerifyAfterWrite)
}

func TestLoadWithoutProjectFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadKDLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
retry {
    max_retries 7
    retry_delay_ms 250
}
batch {
    max_workers 2
}
verify {
    enabled false
}
exclude {
    "**/generated/**"
    "**/testdata/**"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint(7), cfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, uint(3), cfg.ReadRetries, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.MaxWorkers)
	assert.False(t, cfg.VerifyAfterWrite)
	assert.Equal(t, []string{"**/generated/**", "**/testdata/**"}, cfg.Exclude)
}

func TestLoadMalformedKDL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("retry {\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "retry {\n    max_retries 7\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	t.Setenv(EnvMaxRetries, "1")
	t.Setenv(EnvRetryDelay, "0.5")
	t.Setenv(EnvMaxWorkers, "8")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint(1), cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 8, cfg.MaxWorkers)
}

func TestEnvRetryDelayDurationString(t *testing.T) {
	t.Setenv(EnvRetryDelay, "25ms")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.RetryDelay)
}

func TestEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvMaxRetries, "lots")
	t.Setenv(EnvMaxWorkers, "-2")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint(3), cfg.MaxRetries)
	assert.Equal(t, 4, cfg.MaxWorkers)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), path)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint(3), cfg.MaxRetries)
	assert.Contains(t, cfg.Exclude, "**/testdata/**")

	_, err = WriteDefault(dir)
	assert.Error(t, err, "must not clobber an existing config")
}

func TestDetectBuildArtifacts(t *testing.T) {
	dir := t.TempDir()
	tsconfig := `{"compilerOptions": {"outDir": "out"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(tsconfig), 0644))
	cargo := "[profile.release]\ntarget-dir = \"artifacts\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(cargo), 0644))

	patterns := DetectBuildArtifacts(dir)
	assert.Contains(t, patterns, "**/out/**")
	assert.Contains(t, patterns, "**/artifacts/**")
}

func TestDetectBuildArtifactsEmptyProject(t *testing.T) {
	assert.Empty(t, DetectBuildArtifacts(t.TempDir()))
}
