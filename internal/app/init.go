package app

import (
	"context"
	"path/filepath"

	"github.com/oshokin/pipekit/internal/config"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/utils"
)

// ExecuteInitCommand creates the artifact directory layout described
// by the configuration: the artifacts root plus one directory per
// configured pipeline stage.
func ExecuteInitCommand(ctx context.Context, cfg *config.Config) {
	paths := artifactLayout(cfg)

	if err := utils.CreateDirectories(ctx, paths, true); err != nil {
		logger.Fatalf(ctx, "Failed to create artifact directories: %v", err)
		return
	}

	logger.Infof(ctx, "Artifact layout ready under '%s'", cfg.ArtifactsRoot)
}

// artifactLayout returns the full list of directories the pipeline expects.
func artifactLayout(cfg *config.Config) []string {
	paths := make([]string, 0, len(cfg.ArtifactDirs)+1)
	paths = append(paths, cfg.ArtifactsRoot)

	for _, dir := range cfg.ArtifactDirs {
		paths = append(paths, filepath.Join(cfg.ArtifactsRoot, dir))
	}

	return paths
}
