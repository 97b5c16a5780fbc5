//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/pipekit/internal/constants"
	"github.com/oshokin/pipekit/internal/logger"
)

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// CreateDirectories creates every directory in paths, including missing
// parents. Existing directories are left untouched. When verbose is true,
// each created directory is logged at info level.
func CreateDirectories(ctx context.Context, paths []string, verbose bool) error {
	for _, path := range paths {
		if err := os.MkdirAll(path, constants.DefaultFolderPermissions); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", path, err)
		}

		if verbose {
			logger.Infof(ctx, "Created directory: %s", path)
		}
	}

	return nil
}

// FileSizeBytes returns the size of the file at path in bytes.
func FileSizeBytes(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	return stat.Size(), nil
}

// FileSize returns the size of the file at path as a friendly
// approximate string, e.g. "~ 4.1 kB".
func FileSize(path string) (string, error) {
	size, err := FileSizeBytes(path)
	if err != nil {
		return "", err
	}

	return "~ " + humanize.Bytes(uint64(size)), nil
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// EnsureParentDirectory creates the parent directory of path if it does not exist.
func EnsureParentDirectory(path string) error {
	parent := filepath.Dir(path)
	if parent == "" || parent == "." {
		return nil
	}

	if err := os.MkdirAll(parent, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create parent directory '%s': %w", parent, err)
	}

	return nil
}
