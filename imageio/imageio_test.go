package imageio

import (
	"path/filepath"
	"testing"
)

func TestWriteReadPNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")

	const w, h = 2, 2
	pix := make([]byte, 4*w*h)
	// Bottom-left pixel (y=0 in our bottom-up convention) is opaque red.
	pix[0], pix[1], pix[2], pix[3] = 255, 0, 0, 255
	// Top-left pixel (y=1) is opaque blue.
	pix[1*4*w+0], pix[1*4*w+1], pix[1*4*w+2], pix[1*4*w+3] = 0, 0, 255, 255

	if err := Write(path, &Image{Width: w, Height: h, Pix: pix}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Width != w || got.Height != h {
		t.Fatalf("dimensions = %dx%d, want %dx%d", got.Width, got.Height, w, h)
	}
	if len(got.Pix) != len(pix) {
		t.Fatalf("pixel buffer length = %d, want %d", len(got.Pix), len(pix))
	}
	for i, want := range pix {
		if got.Pix[i] != want {
			t.Fatalf("Pix[%d] = %d, want %d", i, got.Pix[i], want)
		}
	}
}

func TestWriteJPEGDropsAlpha(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.jpg")

	const w, h = 4, 4
	pix := make([]byte, 4*w*h)
	for i := range pix {
		pix[i] = 128
	}
	if err := Write(path, &Image{Width: w, Height: h, Pix: pix}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i := 3; i < len(got.Pix); i += 4 {
		if got.Pix[i] != 255 {
			t.Fatalf("alpha byte at %d = %d, want 255 (opaque, JPEG has no alpha)", i, got.Pix[i])
		}
	}
}

func TestWriteUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.bmp")
	if err := Write(path, &Image{Width: 1, Height: 1, Pix: make([]byte, 4)}); err == nil {
		t.Fatal("want error for unsupported extension")
	}
}
