// Package geometry computes aspect-ratio preserving image dimensions.
package geometry

// Size is an image size in pixels
type Size struct {
	Width  int
	Height int
}

// Ratio calculates the ratio of a target length to an original length
func Ratio(target, original int) float64 {
	return float64(target) / float64(original)
}

// HeightRatio calculates the height ratio between a size and a target size
func HeightRatio(size, target Size) float64 {
	return Ratio(target.Height, size.Height)
}

// WidthRatio calculates the width ratio between a size and a target size
func WidthRatio(size, target Size) float64 {
	return Ratio(target.Width, size.Width)
}

// FitToHeight returns the size fitted to the given height,
// preserving aspect ratio. The derived width is truncated,
// not rounded.
func FitToHeight(size Size, height int) Size {
	return Size{
		Width:  int(Ratio(height, size.Height) * float64(size.Width)),
		Height: height,
	}
}

// FitToWidth returns the size fitted to the given width,
// preserving aspect ratio. The derived height is truncated,
// not rounded.
func FitToWidth(size Size, width int) Size {
	return Size{
		Width:  width,
		Height: int(Ratio(width, size.Width) * float64(size.Height)),
	}
}

// FitWithin returns the size fitted inside max on both axes.
// The axis with the smaller ratio determines the fit; a tie
// resolves to fitting the height.
func FitWithin(size, max Size) Size {
	if HeightRatio(size, max) <= WidthRatio(size, max) {
		return FitToHeight(size, max.Height)
	}
	return FitToWidth(size, max.Width)
}
