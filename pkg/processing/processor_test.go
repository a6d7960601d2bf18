package processing

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/menta2k/image-resizer/pkg/geometry"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{64, 64, 64, 255})
			}
		}
	}

	return img
}

func TestResize(t *testing.T) {
	p := NewProcessor()
	img := createTestImage(400, 300)

	resized := p.Resize(img, geometry.Size{Width: 200, Height: 150})
	bounds := resized.Bounds()

	if bounds.Dx() != 200 || bounds.Dy() != 150 {
		t.Errorf("Resize produced %dx%d, want 200x150", bounds.Dx(), bounds.Dy())
	}
}

func TestSize(t *testing.T) {
	p := NewProcessor()
	img := createTestImage(640, 480)

	size := p.Size(img)
	if size != (geometry.Size{Width: 640, Height: 480}) {
		t.Errorf("Size = %v, want {640 480}", size)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := NewProcessor()
	img := createTestImage(100, 80)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "out.gif", "out.webp"} {
		path := filepath.Join(dir, name)

		if err := p.SaveImage(img, path); err != nil {
			t.Fatalf("SaveImage(%s) failed: %v", name, err)
		}

		loaded, err := p.LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage(%s) failed: %v", name, err)
		}

		size := p.Size(loaded)
		if size.Width != 100 || size.Height != 80 {
			t.Errorf("%s round trip gave %dx%d, want 100x80", name, size.Width, size.Height)
		}
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	p := NewProcessor()

	if _, err := p.LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error loading a missing file")
	}
}

func TestLoadImageCorruptFile(t *testing.T) {
	p := NewProcessor()
	path := filepath.Join(t.TempDir(), "broken.png")

	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := p.LoadImage(path); err == nil {
		t.Error("expected error loading a corrupt file")
	}
}
