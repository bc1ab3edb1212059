package sheets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testSheet builds a sheet where every grid cell is filled with a color
// unique to its index.
func testSheet(width, height, gridWidth, gridHeight int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cellWidth := width / gridWidth
	cellHeight := height / gridHeight
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := (y/cellHeight)*gridWidth + x/cellWidth
			img.Set(x, y, cellColor(index))
		}
	}
	return img
}

func cellColor(index int) color.RGBA {
	return color.RGBA{R: uint8(index * 10), G: uint8(255 - index*10), B: uint8(index), A: 255}
}

func TestCrop(t *testing.T) {
	sheet := testSheet(1024, 512, 4, 2)

	cropped, err := Crop(sheet, 4, 2, 5)
	if err != nil {
		t.Fatalf("Crop returned error: %v", err)
	}

	bounds := cropped.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Fatalf("Expected 256x256 cell, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Index 5 in a 4x2 grid is column 1, row 1: its cell is uniformly the
	// color of index 5.
	want := cellColor(5)
	for _, p := range []image.Point{{0, 0}, {255, 0}, {0, 255}, {255, 255}, {128, 128}} {
		got := color.RGBAModel.Convert(cropped.At(p.X, p.Y)).(color.RGBA)
		if got != want {
			t.Fatalf("Pixel %v = %v, expected %v", p, got, want)
		}
	}
}

func TestCropAllIndexes(t *testing.T) {
	sheet := testSheet(400, 200, 4, 2)

	for index := 0; index < 8; index++ {
		cropped, err := Crop(sheet, 4, 2, index)
		if err != nil {
			t.Fatalf("Crop(%d) returned error: %v", index, err)
		}
		got := color.RGBAModel.Convert(cropped.At(50, 50)).(color.RGBA)
		if got != cellColor(index) {
			t.Errorf("Crop(%d) center pixel = %v, expected %v", index, got, cellColor(index))
		}
	}
}

func TestCropIdempotent(t *testing.T) {
	sheet := testSheet(1024, 512, 4, 2)

	first, err := Crop(sheet, 4, 2, 5)
	if err != nil {
		t.Fatalf("Crop returned error: %v", err)
	}
	second, err := Crop(sheet, 4, 2, 5)
	if err != nil {
		t.Fatalf("Crop returned error: %v", err)
	}

	var a, b bytes.Buffer
	if err := png.Encode(&a, first); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := png.Encode(&b, second); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("Expected identical output for identical crops")
	}
}

func TestCropSingleCell(t *testing.T) {
	sheet := testSheet(300, 400, 1, 1)

	cropped, err := Crop(sheet, 1, 1, 0)
	if err != nil {
		t.Fatalf("Crop returned error: %v", err)
	}
	if cropped.Bounds().Dx() != 300 || cropped.Bounds().Dy() != 400 {
		t.Errorf("Expected full image for 1x1 grid, got %v", cropped.Bounds())
	}
}

func TestCropErrors(t *testing.T) {
	sheet := testSheet(400, 200, 4, 2)

	tests := []struct {
		name       string
		gridWidth  int
		gridHeight int
		index      int
	}{
		{name: "index past grid", gridWidth: 4, gridHeight: 2, index: 8},
		{name: "negative index", gridWidth: 4, gridHeight: 2, index: -1},
		{name: "zero grid width", gridWidth: 0, gridHeight: 2, index: 0},
		{name: "zero grid height", gridWidth: 4, gridHeight: 0, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(sheet, tt.gridWidth, tt.gridHeight, tt.index); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		format   string
		expected string
		wantErr  bool
	}{
		{format: "jpeg", expected: ".jpg"},
		{format: "png", expected: ".png"},
		{format: "gif", wantErr: true},
		{format: "webp", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			ext, err := Ext(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %q", ext)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ext != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, ext)
			}
		})
	}
}
