package configbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/pipekit/internal/logger"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyDocument indicates that a YAML file decoded to no content at all
	// (empty file, only whitespace, or only comments).
	ErrEmptyDocument = errors.New("yaml file is empty")
	// ErrNotMapping indicates that the document root is not a key-value mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
	// ErrKeyNotFound indicates that a requested path does not exist in the box.
	ErrKeyNotFound = errors.New("key not found")
)

// pathSeparator separates nested keys in lookup paths, e.g. "training.epochs".
const pathSeparator = "."

// Box is a read-only attribute-style view over a decoded document.
// Nested mappings are reachable through dot-separated paths.
type Box struct {
	data map[string]any
}

// New wraps an already-decoded mapping in a Box.
// A nil mapping produces an empty box rather than an error.
func New(data map[string]any) *Box {
	if data == nil {
		data = make(map[string]any)
	}

	return &Box{data: data}
}

// FromDocument converts a decoded document root into a Box.
// It returns ErrEmptyDocument for a nil root and ErrNotMapping
// for roots that are not key-value mappings.
func FromDocument(root any) (*Box, error) {
	if root == nil {
		return nil, ErrEmptyDocument
	}

	switch m := root.(type) {
	case map[string]any:
		return New(m), nil
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps; normalize them.
		converted := make(map[string]any, len(m))
		for key, value := range m {
			converted[cast.ToString(key)] = value
		}

		return New(converted), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, root)
	}
}

// LoadYAML reads a YAML file and returns its content as a Box.
// A file whose document decodes to nothing yields ErrEmptyDocument;
// every other failure is propagated unchanged.
func LoadYAML(ctx context.Context, path string) (*Box, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var root any
	if err = yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file '%s': %w", path, err)
	}

	box, err := FromDocument(root)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "YAML file loaded: %s", path)

	return box, nil
}

// Map returns the underlying mapping.
func (b *Box) Map() map[string]any {
	return b.data
}

// Len returns the number of top-level keys.
func (b *Box) Len() int {
	return len(b.data)
}

// Keys returns the top-level keys in sorted order.
func (b *Box) Keys() []string {
	keys := make([]string, 0, len(b.data))
	for key := range b.data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Get resolves a dot-separated path and returns the raw value.
// The second return value reports whether the path exists.
func (b *Box) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var (
		current any = b.data
		parts       = strings.Split(path, pathSeparator)
	)

	for _, part := range parts {
		mapping, err := toStringMap(current)
		if err != nil {
			return nil, false
		}

		value, ok := mapping[part]
		if !ok {
			return nil, false
		}

		current = value
	}

	return current, true
}

// GetE resolves a dot-separated path and returns ErrKeyNotFound if it is absent.
func (b *Box) GetE(path string) (any, error) {
	value, ok := b.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrKeyNotFound, path)
	}

	return value, nil
}

// GetString returns the value at path converted to a string,
// or the empty string if the path does not exist.
func (b *Box) GetString(path string) string {
	value, _ := b.Get(path)

	return cast.ToString(value)
}

// GetInt returns the value at path converted to an int, or 0 if absent.
func (b *Box) GetInt(path string) int {
	value, _ := b.Get(path)

	return cast.ToInt(value)
}

// GetInt64 returns the value at path converted to an int64, or 0 if absent.
func (b *Box) GetInt64(path string) int64 {
	value, _ := b.Get(path)

	return cast.ToInt64(value)
}

// GetFloat64 returns the value at path converted to a float64, or 0 if absent.
func (b *Box) GetFloat64(path string) float64 {
	value, _ := b.Get(path)

	return cast.ToFloat64(value)
}

// GetBool returns the value at path converted to a bool, or false if absent.
func (b *Box) GetBool(path string) bool {
	value, _ := b.Get(path)

	return cast.ToBool(value)
}

// GetStringSlice returns the value at path converted to a string slice,
// or nil if absent.
func (b *Box) GetStringSlice(path string) []string {
	value, ok := b.Get(path)
	if !ok {
		return nil
	}

	return cast.ToStringSlice(value)
}

// Sub returns the nested mapping at path as a Box.
// The second return value reports whether the path exists and is a mapping.
func (b *Box) Sub(path string) (*Box, bool) {
	value, ok := b.Get(path)
	if !ok {
		return nil, false
	}

	mapping, err := toStringMap(value)
	if err != nil {
		return nil, false
	}

	return New(mapping), true
}

// toStringMap converts a generic value into a string-keyed map.
func toStringMap(value any) (map[string]any, error) {
	switch m := value.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		converted := make(map[string]any, len(m))
		for key, item := range m {
			converted[cast.ToString(key)] = item
		}

		return converted, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, value)
	}
}
