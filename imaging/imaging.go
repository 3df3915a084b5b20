// Package imaging handles resizing and encoding of rendered palette
// images.
package imaging

import (
	"bytes"
	"fmt"
	stdimage "image"
	"image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"

	"github.com/watzon/huegen/config"
)

// Handler handles image processing operations
type Handler struct {
	config *config.Config
}

// NewHandler creates a new image handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		config: cfg,
	}
}

// Resize resizes an image maintaining aspect ratio
// to fit within MaxWidth x MaxHeight bounds
func (h *Handler) Resize(img stdimage.Image) stdimage.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// If image is already small enough, return as is
	if width <= h.config.MaxWidth && height <= h.config.MaxHeight {
		return img
	}

	// Calculate scaling factor to fit within bounds
	widthRatio := float64(h.config.MaxWidth) / float64(width)
	heightRatio := float64(h.config.MaxHeight) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	newWidth := uint(float64(width) * ratio)
	newHeight := uint(float64(height) * ratio)

	// Resize using Lanczos resampling
	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// ToPNG converts an image to PNG bytes
func (h *Handler) ToPNG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJPEG converts an image to JPEG bytes
func (h *Handler) ToJPEG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG resizes the image to fit the configured bounds and writes it
// to path.
func (h *Handler) SavePNG(img stdimage.Image, path string) error {
	data, err := h.ToPNG(h.Resize(img))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
