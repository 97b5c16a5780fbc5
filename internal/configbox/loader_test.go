package configbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/pipekit/internal/constants"
)

// TestNewLoader tests loader construction.
func TestNewLoader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cacheSize int
	}{
		{
			name:      "explicit size",
			cacheSize: 8,
		},
		{
			name:      "zero size falls back to default",
			cacheSize: 0,
		},
		{
			name:      "negative size falls back to default",
			cacheSize: -1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewLoader(tt.cacheSize)
			require.NoError(t, err)
			assert.NotNil(t, loader)
		})
	}
}

// TestLoaderLoad tests cached loading and mtime invalidation.
func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t,
		os.WriteFile(path, []byte("epochs: 1\n"), constants.DefaultFilePermissions))

	loader, err := NewLoader(4)
	require.NoError(t, err)

	box, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, box.GetInt("epochs"))
	assert.Equal(t, 1, loader.CacheLen())

	// Second load with an unchanged file returns the cached box.
	cached, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.Same(t, box, cached)

	// Rewriting the file with a newer mtime refreshes the entry.
	require.NoError(t,
		os.WriteFile(path, []byte("epochs: 2\n"), constants.DefaultFilePermissions))

	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	refreshed, err := loader.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.GetInt("epochs"))
	assert.NotSame(t, box, refreshed)
}

// TestLoaderLoadMissingFile tests that stat failures are propagated.
func TestLoaderLoadMissingFile(t *testing.T) {
	t.Parallel()

	loader, err := NewLoader(4)
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoaderInvalidate tests explicit cache invalidation.
func TestLoaderInvalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t,
		os.WriteFile(path, []byte("epochs: 1\n"), constants.DefaultFilePermissions))

	loader, err := NewLoader(4)
	require.NoError(t, err)

	_, err = loader.Load(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, loader.CacheLen())

	loader.Invalidate(path)
	assert.Equal(t, 0, loader.CacheLen())
}

// TestLoaderEmptyDocument tests that empty files are not cached as valid entries.
func TestLoaderEmptyDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, constants.DefaultFilePermissions))

	loader, err := NewLoader(4)
	require.NoError(t, err)

	_, err = loader.Load(ctx, path)
	require.ErrorIs(t, err, ErrEmptyDocument)
	assert.Equal(t, 0, loader.CacheLen())
}
