package backend

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_MemoryBackend(t *testing.T) {
	result, err := NewFactory(nil).CreateBackend(Config{Type: MemoryBackend})
	require.NoError(t, err)
	assert.Equal(t, MemoryBackend, result.Type)
	assert.NotNil(t, result.Store)
	assert.Nil(t, result.Cleanup)
}

func TestFactory_SQLiteBackend(t *testing.T) {
	result, err := NewFactory(nil).CreateBackend(Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	assert.Equal(t, SQLiteBackend, result.Type)
	require.NotNil(t, result.Cleanup)
	assert.NoError(t, result.Cleanup())
}

func TestFactory_SQLiteFailureFallsBackToMemory(t *testing.T) {
	// A path that cannot be created routes the process to the memory store
	// instead of failing startup.
	result, err := NewFactory(nil).CreateBackend(Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: string([]byte{0}) + "/nope/walletalert.db",
	})
	require.NoError(t, err)
	assert.Equal(t, MemoryBackend, result.Type)
	assert.NotNil(t, result.Store)
}

func TestFactory_InvalidType(t *testing.T) {
	_, err := NewFactory(nil).CreateBackend(Config{Type: "postgres"})
	assert.Error(t, err)
}

func TestBackendType_IsValid(t *testing.T) {
	assert.True(t, SQLiteBackend.IsValid())
	assert.True(t, MemoryBackend.IsValid())
	assert.False(t, BackendType("").IsValid())
	assert.False(t, BackendType("sheets").IsValid())
}
