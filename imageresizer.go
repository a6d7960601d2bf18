// Package imageresizer batch-resizes image files to a target height
// or width, preserving aspect ratio.
//
// Resized copies are written alongside the originals with " - resized"
// appended to the filename stem; originals are never overwritten.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		imageresizer "github.com/menta2k/image-resizer"
//	)
//
//	func main() {
//		r := imageresizer.New()
//
//		// Writes "photo - resized.jpg" next to the original.
//		if err := r.ResizeToHeight("photo.jpg", 1080); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Three resize modes are available:
//
//   - ResizeToHeight: fixes the height, derives the width
//   - ResizeToWidth: fixes the width, derives the height
//   - ResizeWithin: fits the image inside a bounding box on both axes
//
// All modes resample with the Lanczos filter and truncate the derived
// dimension to whole pixels. Decoding and encoding of gif, jpeg, png
// and webp files is delegated to the processing package.
package imageresizer

import (
	"fmt"

	"github.com/menta2k/image-resizer/internal/fileutil"
	"github.com/menta2k/image-resizer/pkg/geometry"
	"github.com/menta2k/image-resizer/pkg/processing"
)

// Version of the image resizer library
const Version = "1.0.0"

// Resizer provides a high-level interface for resizing image files
type Resizer struct {
	processor *processing.Processor
}

// New creates a new Resizer with default encoding quality
func New() *Resizer {
	return &Resizer{processor: processing.NewProcessor()}
}

// NewWithQuality creates a Resizer with custom JPEG/WebP quality
// (1-100) and WebP lossless mode
func NewWithQuality(quality int, lossless bool) *Resizer {
	return &Resizer{processor: processing.NewProcessorWithQuality(quality, lossless)}
}

// ResizeToHeight resizes the image at path to the given height,
// deriving the width proportionally
func (r *Resizer) ResizeToHeight(path string, height int) error {
	return r.resizeFile(path, func(size geometry.Size) geometry.Size {
		return geometry.FitToHeight(size, height)
	})
}

// ResizeToWidth resizes the image at path to the given width,
// deriving the height proportionally
func (r *Resizer) ResizeToWidth(path string, width int) error {
	return r.resizeFile(path, func(size geometry.Size) geometry.Size {
		return geometry.FitToWidth(size, width)
	})
}

// ResizeWithin resizes the image at path to fit inside max on both
// axes without exceeding it
func (r *Resizer) ResizeWithin(path string, max geometry.Size) error {
	return r.resizeFile(path, func(size geometry.Size) geometry.Size {
		return geometry.FitWithin(size, max)
	})
}

// ResizedName returns the output filename a resize of path would
// produce, e.g. "photo.png" becomes "photo - resized.png"
func (r *Resizer) ResizedName(path string) string {
	return fileutil.ResizedName(path)
}

func (r *Resizer) resizeFile(path string, fit func(geometry.Size) geometry.Size) error {
	img, err := r.processor.LoadImage(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	size := r.processor.Size(img)
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("image %s has zero dimensions", path)
	}

	resized := r.processor.Resize(img, fit(size))
	if err := r.processor.SaveImage(resized, fileutil.ResizedName(path)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
