// Package media contains input-loading glue: image sniffing and audio
// probing/conversion for payloads heading to the inference runtime.
package media

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageInfo describes a successfully decoded image header.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

func (i ImageInfo) ContentType() string {
	return "image/" + i.Format
}

// SniffImage decodes just the image header, enough to reject payloads the
// runtime could never classify.
func SniffImage(data []byte) (ImageInfo, error) {
	if len(data) == 0 {
		return ImageInfo{}, fmt.Errorf("empty image data")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return ImageInfo{}, fmt.Errorf("image has zero dimensions")
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
