package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/pipekit/internal/config"
	"github.com/oshokin/pipekit/internal/constants"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/storage"
	"github.com/oshokin/pipekit/internal/utils"
)

// ExecuteStashCommand copies a file into the artifact store as a binary blob.
// When destPath is empty, the blob lands under the artifacts root keeping
// the source base name.
func ExecuteStashCommand(ctx context.Context, cfg *config.Config, sourcePath, destPath string) {
	if destPath == "" {
		destPath = filepath.Join(cfg.ArtifactsRoot, filepath.Base(sourcePath))
	}

	store := storage.NewFileStore(cfg.ReplaceBlobs)

	written, err := stashFile(ctx, store, sourcePath, destPath, logger.Level() <= zap.InfoLevel)
	if err != nil {
		logger.Fatalf(ctx, "Failed to stash '%s': %v", sourcePath, err)
		return
	}

	logger.Infof(ctx, "Stashed '%s' into '%s' (%d bytes)", sourcePath, destPath, written)
}

// ExecuteFetchCommand reads a binary blob from the artifact store and writes
// it to destPath.
func ExecuteFetchCommand(ctx context.Context, cfg *config.Config, artifactPath, destPath string) {
	store := storage.NewFileStore(cfg.ReplaceBlobs)

	content, err := store.LoadBlob(ctx, artifactPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch '%s': %v", artifactPath, err)
		return
	}

	if err = utils.EnsureParentDirectory(destPath); err != nil {
		logger.Fatalf(ctx, "Failed to prepare destination: %v", err)
		return
	}

	if err = os.WriteFile(destPath, content, constants.DefaultFilePermissions); err != nil {
		logger.Fatalf(ctx, "Failed to write '%s': %v", destPath, err)
		return
	}

	logger.Infof(ctx, "Fetched '%s' into '%s'", artifactPath, destPath)
}

// stashFile streams a source file into the store, optionally showing a
// progress bar on the terminal.
func stashFile(
	ctx context.Context,
	store storage.Store,
	sourcePath, destPath string,
	showProgress bool,
) (int64, error) {
	size, err := utils.FileSizeBytes(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to stat source: %w", err)
	}

	file, err := os.Open(filepath.Clean(sourcePath))
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}

	defer file.Close() //nolint:errcheck // The file is only read.

	var reader io.Reader = file

	if showProgress {
		bar := progressbar.DefaultBytes(size, "Stashing")
		reader = io.TeeReader(file, bar)
	}

	return store.SaveBlob(ctx, destPath, reader)
}
