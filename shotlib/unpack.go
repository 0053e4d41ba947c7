package shotlib

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// The Python driver executed inside Blender. It is unpacked next to the
// user cache so Blender can load it from a plain path.
//
//go:embed shotlib/*
var embeddedShotLib embed.FS

func UnpackShotLib(targetDir string) error {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return err
	}

	return fs.WalkDir(embeddedShotLib, "shotlib", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := embeddedShotLib.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel("shotlib", path)
		outPath := filepath.Join(targetDir, relPath)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return err
		}
		return os.WriteFile(outPath, data, 0644)
	})
}
