package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"

	"github.com/oshokin/pipekit/internal/config"
	"github.com/oshokin/pipekit/internal/configbox"
	"github.com/oshokin/pipekit/internal/constants"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/storage"
)

// ExecuteGetCommand reads a configuration or report file and prints the value
// at the dot-separated key to stdout. JSON files go through the artifact
// store; everything else is treated as YAML. An empty key lists the
// top-level keys instead.
func ExecuteGetCommand(ctx context.Context, cfg *config.Config, filePath, key string) {
	box, err := loadDocument(ctx, cfg, filePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load '%s': %v", filePath, err)
		return
	}

	if key == "" {
		fmt.Println(strings.Join(box.Keys(), "\n"))
		return
	}

	value, err := box.GetE(key)
	if err != nil {
		logger.Fatalf(ctx, "Failed to resolve key: %v", err)
		return
	}

	fmt.Println(cast.ToString(value))
}

// loadDocument picks the decoder based on the file extension.
func loadDocument(ctx context.Context, cfg *config.Config, filePath string) (*configbox.Box, error) {
	if filepath.Ext(filePath) == constants.ExtensionJSON {
		store := storage.NewFileStore(cfg.ReplaceBlobs)

		return store.LoadJSON(ctx, filePath)
	}

	loader, err := configbox.NewLoader(int(cfg.LoaderCacheSize))
	if err != nil {
		return nil, err
	}

	return loader.Load(ctx, filePath)
}
