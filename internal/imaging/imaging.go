package imaging

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/pipekit/internal/constants"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/utils"
)

// EncodeFile reads the image at path and returns its contents
// as a standard base64 string.
func EncodeFile(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(content)

	logger.Debugf(ctx, "Image encoded: %s (%d bytes raw, %d bytes encoded)",
		path, len(content), len(encoded))

	return encoded, nil
}

// DecodeToFile decodes a standard base64 payload and writes the raw bytes
// to path, creating parent directories as needed.
func DecodeToFile(ctx context.Context, payload, path string) error {
	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	if err = utils.EnsureParentDirectory(path); err != nil {
		return err
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	logger.Debugf(ctx, "Image decoded: %s (%d bytes)", path, len(content))

	return nil
}
