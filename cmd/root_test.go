package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/pipekit/internal/config"
	"github.com/oshokin/pipekit/internal/constants"
)

const testBaseConfigContent = `
artifacts_root: "artifacts"
artifact_dirs:
  - "data_ingestion"
  - "training"
  - "evaluation"
replace_blobs: false
loader_cache_size: 16
max_image_size: "8MB"
log_level: "info"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "artifacts", cfg.ArtifactsRoot)
				assert.False(t, cfg.ReplaceBlobs)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name: "artifacts flag - override artifacts root",
			flags: map[string]string{
				"artifacts": "/data/artifacts",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/data/artifacts", cfg.ArtifactsRoot)
				assert.False(t, cfg.ReplaceBlobs)
			},
		},
		{
			name: "replace flag - override blob replacement",
			flags: map[string]string{
				"replace": "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "artifacts", cfg.ArtifactsRoot)
				assert.True(t, cfg.ReplaceBlobs)
			},
		},
		{
			name: "log-level flag - override log level",
			flags: map[string]string{
				"log-level": "debug",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"artifacts": "/all/artifacts",
				"replace":   "true",
				"log-level": "warn",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/all/artifacts", cfg.ArtifactsRoot)
				assert.True(t, cfg.ReplaceBlobs)
				assert.Equal(t, "warn", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "test-config.yaml")
			require.NoError(t, os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			))

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the root command.
			testCmd := &cobra.Command{
				Use: "test",
			}

			testCmd.Flags().StringP("artifacts", "a", "", "artifacts root")
			testCmd.Flags().BoolP("replace", "r", false, "overwrite artifacts")
			testCmd.Flags().StringP("log-level", "l", "", "log level")

			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestBindFlagsToConfigValidates tests that binding runs full validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfigValidates(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	require.NoError(t, os.WriteFile(
		configPath,
		[]byte(testBaseConfigContent),
		constants.DefaultFilePermissions,
	))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	testCmd := &cobra.Command{
		Use: "test",
	}
	testCmd.Flags().StringP("log-level", "l", "", "log level")

	require.NoError(t, testCmd.Flags().Set("log-level", "extremely-loud"))

	err = bindFlagsToConfig(testCmd.Flags(), cfg)
	require.ErrorIs(t, err, config.ErrUnknownLogLevel)
}

// TestRootCommandStructure tests that every subcommand is registered.
func TestRootCommandStructure(t *testing.T) {
	t.Parallel()

	expected := []string{"init", "get", "encode", "decode", "stash", "fetch", "size"}

	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command '%s' is not registered", name)
	}
}
