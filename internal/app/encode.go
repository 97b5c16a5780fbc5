package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/pipekit/internal/config"
	"github.com/oshokin/pipekit/internal/constants"
	"github.com/oshokin/pipekit/internal/imaging"
	"github.com/oshokin/pipekit/internal/logger"
	"github.com/oshokin/pipekit/internal/utils"
)

// ErrImageTooLarge indicates that an image exceeds the configured size cap.
var ErrImageTooLarge = errors.New("image exceeds max_image_size")

// ExecuteEncodeCommand encodes an image file into base64.
// The payload is written to outputPath, or to stdout when outputPath is empty.
func ExecuteEncodeCommand(ctx context.Context, cfg *config.Config, imagePath, outputPath string) {
	payload, err := encodeImage(ctx, cfg, imagePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to encode image: %v", err)
		return
	}

	if outputPath == "" {
		fmt.Println(payload)
		return
	}

	if err = os.WriteFile(outputPath, []byte(payload), constants.DefaultFilePermissions); err != nil {
		logger.Fatalf(ctx, "Failed to write payload: %v", err)
		return
	}

	logger.Infof(ctx, "Base64 payload saved at: %s", outputPath)
}

// ExecuteDecodeCommand decodes a base64 payload file back into an image at outputPath.
func ExecuteDecodeCommand(ctx context.Context, payloadPath, outputPath string) {
	payload, err := os.ReadFile(payloadPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read payload: %v", err)
		return
	}

	if err = imaging.DecodeToFile(ctx, string(payload), outputPath); err != nil {
		logger.Fatalf(ctx, "Failed to decode payload: %v", err)
		return
	}

	logger.Infof(ctx, "Image saved at: %s", outputPath)
}

// encodeImage enforces the configured size cap and encodes the image.
func encodeImage(ctx context.Context, cfg *config.Config, imagePath string) (string, error) {
	if cfg.ParsedMaxImageSize > 0 {
		size, err := utils.FileSizeBytes(imagePath)
		if err != nil {
			return "", err
		}

		if size > cfg.ParsedMaxImageSize {
			return "", fmt.Errorf("%w: %s is %s, cap is %s",
				ErrImageTooLarge,
				imagePath,
				humanize.Bytes(uint64(size)),
				humanize.Bytes(uint64(cfg.ParsedMaxImageSize)))
		}
	}

	return imaging.EncodeFile(ctx, imagePath)
}
