package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// ArtifactsRoot is the directory under which pipeline artifacts are stored.
	ArtifactsRoot string `mapstructure:"artifacts_root"`
	// ArtifactDirs lists the stage directories created under the artifacts root.
	ArtifactDirs []string `mapstructure:"artifact_dirs"`
	// ReplaceBlobs indicates whether existing binary artifacts are overwritten.
	ReplaceBlobs bool `mapstructure:"replace_blobs"`
	// LoaderCacheSize is the number of parsed YAML files kept in memory.
	LoaderCacheSize int64 `mapstructure:"loader_cache_size"`
	// MaxImageSize caps the size of images accepted for base64 encoding
	// (e.g., "16MB", "512KB"). Empty string disables the cap.
	MaxImageSize string `mapstructure:"max_image_size"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedMaxImageSize is the parsed image size cap in bytes.
	ParsedMaxImageSize int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".pipekit.yaml"

	// DefaultArtifactsRoot is the default directory for pipeline artifacts.
	DefaultArtifactsRoot = "artifacts"

	// maxLoaderCacheSize bounds the YAML loader cache to keep memory predictable.
	maxLoaderCacheSize = 4096
)

// Static error definitions for better error handling.
var (
	// ErrEmptyArtifactsRoot indicates that the artifacts root is missing.
	ErrEmptyArtifactsRoot = errors.New("artifacts_root cannot be empty")
	// ErrInvalidLoaderCacheSize indicates that the loader cache size is invalid.
	ErrInvalidLoaderCacheSize = errors.New("loader_cache_size must be a positive integer")
	// ErrLoaderCacheSizeTooHigh indicates that the loader cache size exceeds the allowed maximum.
	ErrLoaderCacheSizeTooHigh = errors.New("loader_cache_size is too high")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrEmptyArtifactDir indicates that an artifact directory entry is blank.
	ErrEmptyArtifactDir = errors.New("artifact_dirs entries cannot be blank")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.ArtifactsRoot = strings.TrimSpace(cfg.ArtifactsRoot)
	if cfg.ArtifactsRoot == "" {
		return ErrEmptyArtifactsRoot
	}

	for _, dir := range cfg.ArtifactDirs {
		if strings.TrimSpace(dir) == "" {
			return ErrEmptyArtifactDir
		}
	}

	if cfg.LoaderCacheSize <= 0 {
		return ErrInvalidLoaderCacheSize
	}

	if cfg.LoaderCacheSize > maxLoaderCacheSize {
		return fmt.Errorf("%w: must be at most %d", ErrLoaderCacheSizeTooHigh, maxLoaderCacheSize)
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxImageSize := strings.TrimSpace(cfg.MaxImageSize)
	if maxImageSize != "" && maxImageSize != "0" {
		parsedMaxImageSize, err := humanize.ParseBytes(maxImageSize)
		if err != nil {
			return fmt.Errorf("failed to parse max image size: %w", err)
		}

		// The size cap is compared against os.FileInfo sizes, which are int64.
		cfg.ParsedMaxImageSize = utils.SafeUint64ToInt64(parsedMaxImageSize)
	}

	return nil
}
