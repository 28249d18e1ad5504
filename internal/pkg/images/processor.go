// Package images normalizes uploaded images: oversized images are scaled
// down and everything is re-encoded as WebP.
package images

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// Processor resizes and re-encodes uploaded images.
type Processor struct {
	maxWidth int
	quality  float32
}

// NewProcessor creates a processor that caps images at maxWidth pixels and
// encodes WebP at the given quality (0-100).
func NewProcessor(maxWidth int, quality int) *Processor {
	return &Processor{
		maxWidth: maxWidth,
		quality:  float32(quality),
	}
}

// Process decodes the image, scales it down to the width cap when it is
// wider, and returns the WebP encoding. Aspect ratio is preserved and
// smaller images are never upscaled.
func (p *Processor) Process(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperrors.ErrInvalidImage
	}

	if p.maxWidth > 0 && img.Bounds().Dx() > p.maxWidth {
		img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

// Dimensions reports the decoded width and height of an image without
// keeping the pixels.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, apperrors.ErrInvalidImage
	}
	return cfg.Width, cfg.Height, nil
}
