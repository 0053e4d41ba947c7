// Package thumb produces a small preview copy of a rendered image.
package thumb

import (
	"fmt"
	"image"
	_ "image/jpeg" // renders may be written as JPEG
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"golang.org/x/image/draw"
)

// DefaultSize is the longest edge of a generated thumbnail in pixels.
const DefaultSize = 256

// Generate decodes the rendered image and writes a downscaled copy to
// thumbPath. The encoding is picked from the extension: .webp or .png.
func Generate(renderPath, thumbPath string, maxSize int) error {
	if maxSize <= 0 {
		maxSize = DefaultSize
	}

	src, err := decode(renderPath)
	if err != nil {
		return &job.PathError{Path: renderPath, Err: err}
	}

	dst := downscale(src, maxSize)

	out, err := os.Create(thumbPath)
	if err != nil {
		return &job.PathError{Path: thumbPath, Err: err}
	}
	defer out.Close()

	switch filepath.Ext(thumbPath) {
	case ".webp":
		err = nativewebp.Encode(out, dst, nil)
	default:
		err = png.Encode(out, dst)
	}
	if err != nil {
		return &job.PathError{Path: thumbPath, Err: fmt.Errorf("encode: %w", err)}
	}
	return nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// downscale fits the image inside a maxSize square, preserving aspect.
func downscale(src image.Image, maxSize int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > h {
		h = h * maxSize / w
		w = maxSize
	} else {
		w = w * maxSize / h
		h = maxSize
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
