package job

import (
	"fmt"
	"path/filepath"
	"time"
)

// Options is the parsed invocation record. It is filled once from the
// command line (with viper-provided defaults) and never mutated after
// Validate succeeds.
type Options struct {
	FBXPath    string
	HDRPath    string
	Width      int
	Height     int
	Samples    int
	RenderPath string

	// Optional outputs.
	SavePath   string
	ThumbPath  string
	UploadDest string

	// Background (environment) strength applied to the HDR map.
	Strength float64

	// Zero means no render timeout.
	Timeout time.Duration
}

// Validate checks the option record and returns a *ConfigurationError
// naming the first offending flag. File existence and readability are
// checked later, by the probe stage.
func (o *Options) Validate() error {
	if o.FBXPath == "" {
		return &ConfigurationError{Flag: "fbx", Reason: "required"}
	}
	if o.HDRPath == "" {
		return &ConfigurationError{Flag: "hdr", Reason: "required"}
	}
	if o.RenderPath == "" {
		return &ConfigurationError{Flag: "render", Reason: "required"}
	}
	if o.Width <= 0 {
		return &ConfigurationError{Flag: "width", Reason: fmt.Sprintf("must be positive, got %d", o.Width)}
	}
	if o.Height <= 0 {
		return &ConfigurationError{Flag: "height", Reason: fmt.Sprintf("must be positive, got %d", o.Height)}
	}
	if o.Samples <= 0 {
		return &ConfigurationError{Flag: "samples", Reason: fmt.Sprintf("must be positive, got %d", o.Samples)}
	}
	if o.Strength <= 0 {
		return &ConfigurationError{Flag: "strength", Reason: fmt.Sprintf("must be positive, got %g", o.Strength)}
	}
	if o.ThumbPath != "" {
		switch filepath.Ext(o.ThumbPath) {
		case ".png", ".webp":
		default:
			return &ConfigurationError{Flag: "thumb", Reason: "extension must be .png or .webp"}
		}
	}
	return nil
}

// Aspect is the frame aspect ratio (width over height).
func (o *Options) Aspect() float64 {
	return float64(o.Width) / float64(o.Height)
}
