package color

import (
	"image"
	stdcolor "image/color"
	"testing"
)

func TestGeneratePaletteImage(t *testing.T) {
	colors := []Color{
		mustHSV(t, 0, 0.8, 0.8),
		mustHSV(t, 180, 0.8, 0.8),
	}

	img, err := GeneratePaletteImage(PaletteImage{
		Colors:        colors,
		ShowHexCodes:  true,
		ShowRGBValues: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != imageWidth || bounds.Dy() != imageHeight {
		t.Fatalf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), imageWidth, imageHeight)
	}

	// A corner of the first bar carries the first color.
	want := colors[0].ToRGBA()
	got := rgbaAt(img, 5, 5)
	if got != want {
		t.Errorf("pixel (5,5) = %v, want %v", got, want)
	}

	// The right edge of the second bar carries the second color.
	want = colors[1].ToRGBA()
	got = rgbaAt(img, imageWidth-5, 5)
	if got != want {
		t.Errorf("pixel near right edge = %v, want %v", got, want)
	}
}

func TestGeneratePaletteImageEmpty(t *testing.T) {
	if _, err := GeneratePaletteImage(PaletteImage{}); err == nil {
		t.Fatal("empty palette rendered, want error")
	}
}

func TestGeneratePaletteImageMissingFont(t *testing.T) {
	colors := []Color{mustHSV(t, 0, 0.5, 0.5)}
	_, err := GeneratePaletteImage(PaletteImage{
		Colors:       colors,
		ShowHexCodes: true,
		FontPath:     "testdata/does-not-exist.ttf",
	})
	if err == nil {
		t.Fatal("missing font rendered, want error")
	}
}

func rgbaAt(img image.Image, x, y int) stdcolor.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return stdcolor.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
