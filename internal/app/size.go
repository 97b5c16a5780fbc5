package app

import (
	"context"
	"fmt"

	"github.com/oshokin/pipekit/internal/config"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/storage"
	"github.com/oshokin/pipekit/internal/utils"
)

// ExecuteSizeCommand prints a friendly size for every path and, when
// reportPath is set, saves the exact byte counts as a JSON report.
func ExecuteSizeCommand(ctx context.Context, cfg *config.Config, paths []string, reportPath string) {
	store := storage.NewFileStore(cfg.ReplaceBlobs)

	if err := sizeReport(ctx, store, paths, reportPath); err != nil {
		logger.Fatalf(ctx, "Failed to report sizes: %v", err)
	}
}

// sizeReport does the actual measuring so tests can substitute the store.
func sizeReport(ctx context.Context, store storage.Store, paths []string, reportPath string) error {
	report := make(map[string]any, len(paths))

	for _, path := range paths {
		friendly, err := utils.FileSize(path)
		if err != nil {
			return fmt.Errorf("failed to measure '%s': %w", path, err)
		}

		size, err := utils.FileSizeBytes(path)
		if err != nil {
			return fmt.Errorf("failed to measure '%s': %w", path, err)
		}

		report[path] = size

		fmt.Printf("%s: %s\n", path, friendly)
	}

	if reportPath == "" {
		return nil
	}

	return store.SaveJSON(ctx, reportPath, report)
}
