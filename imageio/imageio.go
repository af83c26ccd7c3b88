// Package imageio decodes and encodes the 8-bit RGBA pixel buffers a
// filter render operates on (spec.md §4.6, §6), using only the
// standard library's image codecs.
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Image is a decoded (or about-to-be-encoded) 8-bit RGBA frame. Pixels
// are stored bottom-up: row 0 is the image's bottom scanline, matching
// the native origin an OFX host advertises (kOfxImageEffectHostPropNative
// OriginBottomLeft) and the row order a plugin's Render action expects
// (spec.md §6 "rgba_bytes vertically flipped so y=0 is bottom").
type Image struct {
	Width  int
	Height int
	Pix    []byte // 4*Width*Height bytes, row-major, bottom-up
}

// Read decodes the image file at path into a bottom-up RGBA buffer.
// The format is chosen by image.Decode from the file's own header, not
// its extension.
func Read(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: opening %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decoding %s: %w", path, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		srcRow := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*w]
		dstRow := pix[(h-1-y)*4*w : (h-y)*4*w]
		copy(dstRow, srcRow)
	}
	return &Image{Width: w, Height: h, Pix: pix}, nil
}

// Write encodes img to path. The encoder is chosen by path's extension
// (".png" or ".jpg"/".jpeg"); JPEG has no alpha channel, so the alpha
// byte of each pixel is dropped on write.
func Write(path string, img *Image) error {
	if len(img.Pix) < 4*img.Width*img.Height {
		return fmt.Errorf("imageio: buffer too small for %dx%d RGBA", img.Width, img.Height)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		srcRow := img.Pix[(img.Height-1-y)*4*img.Width : (img.Height-y)*4*img.Width]
		dstRow := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*img.Width]
		copy(dstRow, srcRow)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		if err := png.Encode(f, rgba); err != nil {
			return fmt.Errorf("imageio: encoding %s: %w", path, err)
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(f, rgba, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
			return fmt.Errorf("imageio: encoding %s: %w", path, err)
		}
	default:
		return fmt.Errorf("imageio: unsupported output extension %q", ext)
	}
	return nil
}
