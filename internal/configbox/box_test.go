package configbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/pipekit/internal/constants"
)

// writeTestFile writes content to a file inside a temp dir and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), constants.DefaultFilePermissions))

	return path
}

// TestLoadYAML tests the LoadYAML function.
func TestLoadYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		content       string
		expectedError error
		check         func(t *testing.T, box *Box)
	}{
		{
			name: "valid document",
			content: `
model:
  name: resnet50
  classes: 2
training:
  epochs: 10
  learning_rate: 0.001
`,
			check: func(t *testing.T, box *Box) {
				t.Helper()

				assert.Equal(t, "resnet50", box.GetString("model.name"))
				assert.Equal(t, 2, box.GetInt("model.classes"))
				assert.Equal(t, 10, box.GetInt("training.epochs"))
				assert.InDelta(t, 0.001, box.GetFloat64("training.learning_rate"), 1e-9)
			},
		},
		{
			name:          "empty file",
			content:       "",
			expectedError: ErrEmptyDocument,
		},
		{
			name:          "whitespace only",
			content:       "   \n\t\n",
			expectedError: ErrEmptyDocument,
		},
		{
			name:          "comments only",
			content:       "# nothing to see here\n# move along\n",
			expectedError: ErrEmptyDocument,
		},
		{
			name:          "explicit null document",
			content:       "null\n",
			expectedError: ErrEmptyDocument,
		},
		{
			name:          "scalar root",
			content:       "42\n",
			expectedError: ErrNotMapping,
		},
		{
			name:          "sequence root",
			content:       "- a\n- b\n",
			expectedError: ErrNotMapping,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestFile(t, "config.yaml", tt.content)

			box, err := LoadYAML(context.Background(), path)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, box)
			tt.check(t, box)
		})
	}
}

// TestLoadYAMLMissingFile tests that a missing file propagates the OS error.
func TestLoadYAMLMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadYAML(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadYAMLMalformed tests that malformed YAML propagates the parse error.
func TestLoadYAMLMalformed(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "broken.yaml", "model: [unclosed\n")

	_, err := LoadYAML(context.Background(), path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDocument)
}

// TestBoxGet tests path resolution on the Box type.
func TestBoxGet(t *testing.T) {
	t.Parallel()

	box := New(map[string]any{
		"artifacts": map[string]any{
			"root": "artifacts",
			"stages": map[string]any{
				"ingestion": "artifacts/data_ingestion",
			},
		},
		"threshold": 0.75,
		"enabled":   true,
		"labels":    []any{"cat", "dog"},
	})

	tests := []struct {
		name     string
		path     string
		expected any
		found    bool
	}{
		{
			name:     "top-level key",
			path:     "threshold",
			expected: 0.75,
			found:    true,
		},
		{
			name:     "nested key",
			path:     "artifacts.root",
			expected: "artifacts",
			found:    true,
		},
		{
			name:     "deeply nested key",
			path:     "artifacts.stages.ingestion",
			expected: "artifacts/data_ingestion",
			found:    true,
		},
		{
			name:  "missing key",
			path:  "artifacts.missing",
			found: false,
		},
		{
			name:  "path through scalar",
			path:  "threshold.deeper",
			found: false,
		},
		{
			name:  "empty path",
			path:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, ok := box.Get(tt.path)
			assert.Equal(t, tt.found, ok)

			if tt.found {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

// TestBoxTypedAccessors tests the typed accessor helpers.
func TestBoxTypedAccessors(t *testing.T) {
	t.Parallel()

	box := New(map[string]any{
		"name":    "pipeline",
		"epochs":  3,
		"rate":    0.1,
		"augment": true,
		"labels":  []any{"cat", "dog"},
	})

	assert.Equal(t, "pipeline", box.GetString("name"))
	assert.Equal(t, 3, box.GetInt("epochs"))
	assert.Equal(t, int64(3), box.GetInt64("epochs"))
	assert.InDelta(t, 0.1, box.GetFloat64("rate"), 1e-9)
	assert.True(t, box.GetBool("augment"))
	assert.Equal(t, []string{"cat", "dog"}, box.GetStringSlice("labels"))

	// Absent paths fall back to zero values.
	assert.Empty(t, box.GetString("missing"))
	assert.Zero(t, box.GetInt("missing"))
	assert.False(t, box.GetBool("missing"))
	assert.Nil(t, box.GetStringSlice("missing"))
}

// TestBoxGetE tests the error-returning accessor.
func TestBoxGetE(t *testing.T) {
	t.Parallel()

	box := New(map[string]any{"key": "value"})

	value, err := box.GetE("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	_, err = box.GetE("other")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestBoxSub tests extracting nested mappings as boxes.
func TestBoxSub(t *testing.T) {
	t.Parallel()

	box := New(map[string]any{
		"training": map[string]any{
			"epochs": 5,
		},
		"name": "pipeline",
	})

	sub, ok := box.Sub("training")
	require.True(t, ok)
	assert.Equal(t, 5, sub.GetInt("epochs"))

	_, ok = box.Sub("name")
	assert.False(t, ok, "scalar values must not convert to boxes")

	_, ok = box.Sub("missing")
	assert.False(t, ok)
}

// TestBoxKeys tests key enumeration.
func TestBoxKeys(t *testing.T) {
	t.Parallel()

	box := New(map[string]any{"b": 1, "a": 2, "c": 3})

	assert.Equal(t, []string{"a", "b", "c"}, box.Keys())
	assert.Equal(t, 3, box.Len())
}

// TestFromDocument tests document root conversion.
func TestFromDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		root          any
		expectedError error
	}{
		{
			name: "string-keyed mapping",
			root: map[string]any{"a": 1},
		},
		{
			name: "interface-keyed mapping",
			root: map[any]any{"a": 1},
		},
		{
			name:          "nil root",
			root:          nil,
			expectedError: ErrEmptyDocument,
		},
		{
			name:          "scalar root",
			root:          "hello",
			expectedError: ErrNotMapping,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			box, err := FromDocument(tt.root)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, box.GetInt("a"))
		})
	}
}
