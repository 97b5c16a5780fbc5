package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/oshokin/pipekit/internal/configbox"
	"github.com/oshokin/pipekit/internal/constants"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/utils"
)

// jsonIndent is the indentation unit for saved JSON artifacts.
const jsonIndent = "    "

// Store persists and retrieves pipeline artifacts.
//
//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mock_storage
type Store interface {
	// SaveJSON writes data as an indented JSON document to path.
	SaveJSON(ctx context.Context, path string, data any) error
	// LoadJSON reads a JSON document from path into an attribute-style box.
	LoadJSON(ctx context.Context, path string) (*configbox.Box, error)
	// SaveBlob streams reader contents into a binary artifact at path
	// and returns the number of bytes written.
	SaveBlob(ctx context.Context, path string, reader io.Reader) (int64, error)
	// LoadBlob reads the binary artifact at path.
	LoadBlob(ctx context.Context, path string) ([]byte, error)
}

// FileStore is a Store backed by the local filesystem.
type FileStore struct {
	// replaceBlobs controls whether SaveBlob overwrites existing artifacts.
	replaceBlobs bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a filesystem-backed store.
// When replaceBlobs is false, SaveBlob leaves existing artifacts untouched.
func NewFileStore(replaceBlobs bool) *FileStore {
	return &FileStore{replaceBlobs: replaceBlobs}
}

// SaveJSON writes data as an indented JSON document to path,
// creating parent directories as needed.
func (s *FileStore) SaveJSON(ctx context.Context, path string, data any) error {
	content, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Keep files friendly to text tools.
	content = append(content, '\n')

	if err = utils.EnsureParentDirectory(path); err != nil {
		return err
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	logger.Infof(ctx, "JSON saved at: %s", path)

	return nil
}

// LoadJSON reads a JSON document from path into an attribute-style box.
// Documents whose root is not an object are rejected.
func (s *FileStore) LoadJSON(ctx context.Context, path string) (*configbox.Box, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var root any
	if err = json.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file '%s': %w", path, err)
	}

	box, err := configbox.FromDocument(root)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "JSON loaded from: %s", path)

	return box, nil
}

// SaveBlob streams reader contents into a binary artifact at path.
// The data lands in a uuid-suffixed temporary file first and is renamed
// into place once the copy completes.
func (s *FileStore) SaveBlob(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if !s.replaceBlobs {
		exists, err := utils.IsFileExist(path)
		if err != nil {
			return 0, fmt.Errorf("failed to check artifact '%s': %w", path, err)
		}

		if exists {
			logger.Infof(ctx, "File '%s' already exists, skipping save", path)

			return 0, nil
		}
	}

	if err := utils.EnsureParentDirectory(path); err != nil {
		return 0, err
	}

	tempPath := path + "." + uuid.New().String() + ".part"

	file, err := os.OpenFile(
		filepath.Clean(tempPath),
		os.O_CREATE|os.O_EXCL|os.O_WRONLY,
		constants.DefaultFilePermissions,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var saved bool

	defer func() {
		closeErr := file.Close()

		// Clean up the temporary file if the copy failed.
		if !saved {
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempPath, removeErr, closeErr)
			}
		}
	}()

	written, err := io.Copy(file, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to write artifact: %w", err)
	}

	if err = file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close artifact: %w", err)
	}

	if err = os.Rename(tempPath, path); err != nil {
		return 0, fmt.Errorf("failed to move artifact into place: %w", err)
	}

	saved = true

	logger.Infof(ctx, "Binary saved at: %s (%s)", path, humanize.Bytes(uint64(written)))

	return written, nil
}

// LoadBlob reads the binary artifact at path.
func (s *FileStore) LoadBlob(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	logger.Infof(ctx, "Binary loaded from: %s (%s)", path, humanize.Bytes(uint64(len(content))))

	return content, nil
}
