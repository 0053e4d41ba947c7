package thumb

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	path := filepath.Join(dir, "render.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGeneratePNGThumbnail(t *testing.T) {
	dir := t.TempDir()
	render := writeTestPNG(t, dir, 800, 400)
	out := filepath.Join(dir, "thumb.png")

	if err := Generate(render, out, 200); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("expected 200x100 thumbnail, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestGenerateWebPThumbnail(t *testing.T) {
	dir := t.TempDir()
	render := writeTestPNG(t, dir, 64, 64)
	out := filepath.Join(dir, "thumb.webp")

	if err := Generate(render, out, 32); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected thumbnail file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("thumbnail file is empty")
	}
}

func TestGenerateFromJPEGRender(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.RGBA{64, uint8(x), uint8(y), 255})
		}
	}
	render := filepath.Join(dir, "render.jpg")
	f, err := os.Create(render)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := filepath.Join(dir, "thumb.png")
	if err := Generate(render, out, 60); err != nil {
		t.Fatalf("Generate from jpeg render: %v", err)
	}

	tf, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer tf.Close()
	cfg, _, err := image.DecodeConfig(tf)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != 60 || cfg.Height != 30 {
		t.Errorf("expected 60x30 thumbnail, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestGenerateMissingRender(t *testing.T) {
	dir := t.TempDir()
	err := Generate(filepath.Join(dir, "missing.png"), filepath.Join(dir, "t.png"), 0)

	var pathErr *job.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected PathError, got %v", err)
	}
}
