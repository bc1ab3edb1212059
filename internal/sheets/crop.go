package sheets

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat marks a decoded sheet encoding the extractor cannot
// write back out.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Crop returns the grid cell at index as a standalone image. Cells are laid
// out row-major; cell dimensions are the sheet dimensions divided by the grid
// dimensions, truncated.
func Crop(img image.Image, gridWidth, gridHeight, index int) (image.Image, error) {
	if gridWidth < 1 || gridHeight < 1 {
		return nil, fmt.Errorf("invalid grid %dx%d", gridWidth, gridHeight)
	}
	if index < 0 || index >= gridWidth*gridHeight {
		return nil, fmt.Errorf("index %d outside %dx%d grid", index, gridWidth, gridHeight)
	}

	bounds := img.Bounds()
	cellWidth := bounds.Dx() / gridWidth
	cellHeight := bounds.Dy() / gridHeight
	col := index % gridWidth
	row := index / gridWidth

	cell := image.Rect(
		bounds.Min.X+col*cellWidth,
		bounds.Min.Y+row*cellHeight,
		bounds.Min.X+(col+1)*cellWidth,
		bounds.Min.Y+(row+1)*cellHeight,
	)

	// Copy the cell out so the result does not alias the whole sheet.
	dst := image.NewRGBA(image.Rect(0, 0, cellWidth, cellHeight))
	draw.Copy(dst, image.Point{}, img, cell, draw.Src, nil)
	return dst, nil
}

// Ext maps a decoded image format to its output file extension. Only JPEG and
// PNG sheets are supported.
func Ext(format string) (string, error) {
	switch format {
	case "jpeg":
		return ".jpg", nil
	case "png":
		return ".png", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Encode writes img using the encoding the sheet was decoded from.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
