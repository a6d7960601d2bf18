// Package processing handles image decode, resample and encode.
package processing

import (
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/image-resizer/internal/fileutil"
	"github.com/menta2k/image-resizer/pkg/geometry"
)

// Processor handles image processing operations
type Processor struct {
	quality  int
	lossless bool
}

// NewProcessor creates a new image processor with default encoding quality
func NewProcessor() *Processor {
	return &Processor{quality: 90}
}

// NewProcessorWithQuality creates a processor with custom JPEG/WebP
// quality (1-100) and WebP lossless mode
func NewProcessorWithQuality(quality int, lossless bool) *Processor {
	return &Processor{quality: quality, lossless: lossless}
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if fileutil.Extension(path) == "webp" {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}
	if img, _, err := image.Decode(f); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// Size returns the pixel dimensions of an image
func (p *Processor) Size(img image.Image) geometry.Size {
	bounds := img.Bounds()
	return geometry.Size{Width: bounds.Dx(), Height: bounds.Dy()}
}

// Resize resamples an image to the exact target size using the
// Lanczos filter
func (p *Processor) Resize(img image.Image, target geometry.Size) image.Image {
	return imaging.Resize(img, target.Width, target.Height, imaging.Lanczos)
}

// SaveImage saves an image to a file, choosing the encoder from the
// file extension
func (p *Processor) SaveImage(img image.Image, path string) error {
	switch fileutil.Extension(path) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: p.lossless, Quality: float32(p.quality)}
		return webp.Encode(f, img, opts)
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(p.quality))
	default:
		return imaging.Save(img, path)
	}
}
