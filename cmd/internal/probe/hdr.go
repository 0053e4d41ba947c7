package probe

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"

	// Registers the Radiance RGBE decoder with image.DecodeConfig.
	_ "github.com/mdouchement/hdr/codec/rgbe"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
)

// Environment summarizes an HDR environment map.
type Environment struct {
	Path   string
	Width  int
	Height int
}

// radianceMagic is the prefix shared by "#?RADIANCE" and "#?RGBE" files.
const radianceMagic = "#?"

// InspectHDR validates the Radiance header of the environment map and
// reads its resolution. Any failure is a *job.ImportError.
func InspectHDR(path string) (*Environment, error) {
	if err := checkRegularFile(path); err != nil {
		return nil, &job.ImportError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &job.ImportError{Path: path, Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic, err := r.Peek(len(radianceMagic))
	if err != nil || string(magic) != radianceMagic {
		return nil, &job.ImportError{Path: path, Err: errors.New("not a Radiance HDR file")}
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, &job.ImportError{Path: path, Err: fmt.Errorf("decode hdr header: %w", err)}
	}

	return &Environment{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}
