package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/publish"
)

func TestStillRejectsBadOptionsFirst(t *testing.T) {
	err := Still(context.Background(), &job.Options{}, "", publish.Config{})

	var confErr *job.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestStillFailsFastOnMissingModel(t *testing.T) {
	dir := t.TempDir()
	renderPath := filepath.Join(dir, "out.png")
	opts := &job.Options{
		FBXPath:    filepath.Join(dir, "missing.fbx"),
		HDRPath:    filepath.Join(dir, "missing.hdr"),
		Width:      64,
		Height:     64,
		Samples:    1,
		RenderPath: renderPath,
		Strength:   1.5,
	}

	err := Still(context.Background(), opts, "", publish.Config{})

	var importErr *job.ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("expected ImportError, got %v", err)
	}

	// No render attempt means no partial output.
	if _, err := os.Stat(renderPath); !os.IsNotExist(err) {
		t.Error("render output should not exist after a preflight failure")
	}
}
