package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadEnvFileParsesEntries(t *testing.T) {
	path := writeEnvFile(t, "# comment line\nBHL_URL=https://example.test/flights\n\nCHC_BASE = ABZ \n")
	manager := &Manager{envVars: map[string]string{}}
	require.NoError(t, manager.LoadEnvFile(path))

	value, ok := manager.Get("BHL_URL")
	require.True(t, ok)
	assert.Equal(t, "https://example.test/flights", value)

	value, ok = manager.Get("CHC_BASE")
	require.True(t, ok)
	assert.Equal(t, "ABZ", value, "surrounding whitespace is trimmed")

	_, ok = manager.Get("MISSING")
	assert.False(t, ok)
}

func TestLoadEnvFileRejectsMalformedLine(t *testing.T) {
	path := writeEnvFile(t, "NOT A PAIR\n")
	manager := &Manager{envVars: map[string]string{}}
	assert.Error(t, manager.LoadEnvFile(path))
}

func TestLoadEnvFileRejectsBadKeys(t *testing.T) {
	for _, line := range []string{"1BAD=x", "BAD-KEY=x", "=x"} {
		manager := &Manager{envVars: map[string]string{}}
		assert.Error(t, manager.LoadEnvFile(writeEnvFile(t, line+"\n")), "line %q", line)
	}
}

func TestMustGetPanicsOnMissingKey(t *testing.T) {
	manager := &Manager{envVars: map[string]string{}}
	assert.Panics(t, func() { manager.MustGet("ABSENT") })
}
