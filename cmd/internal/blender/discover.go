// Package blender locates the host application and runs the embedded
// Python driver inside it.
package blender

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/fbxshot/fbxshot/shotlib"
)

// FindBlender tries several locations to find a Blender executable.
func FindBlender(explicit string) (string, error) {
	// 1. Explicit path from flag or config
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}

	// 2. BLENDER_PATH env var
	if p := os.Getenv("BLENDER_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	// 3. LookPath
	if p, err := exec.LookPath("blender"); err == nil {
		return p, nil
	}

	// 4. Platform-specific fallbacks
	switch runtime.GOOS {
	case "darwin":
		p := "/Applications/Blender.app/Contents/MacOS/Blender"
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	case "windows":
		p := `C:\Program Files\Blender Foundation\Blender\blender.exe`
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", errors.New("blender executable not found")
}

// DriverDir tries several locations to find the Python driver.
func DriverDir() (string, error) {
	// 1. SHOTLIB_PATH env var
	if p := os.Getenv("SHOTLIB_PATH"); p != "" {
		return p, nil
	}

	// 2. Local shotlib directory (development checkout)
	localPath := "./shotlib/shotlib/"
	if _, err := os.Stat(localPath); err == nil {
		absPath, err := filepath.Abs(localPath)
		if err == nil {
			return absPath, nil
		}
	}

	// 3. Unpack embedded shotlib into the user cache
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(filepath.Join(cacheDir, "fbxshot"))
	if err != nil {
		return "", err
	}

	if err := shotlib.UnpackShotLib(absPath); err != nil {
		return "", err
	}

	return absPath, nil
}
