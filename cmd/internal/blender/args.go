package blender

import (
	"fmt"

	"github.com/fbxshot/fbxshot/cmd/internal/framing"
	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/go-gl/mathgl/mgl64"
)

// DriverArgs builds the argument list handed to the Python driver after
// the "--" separator. The list is fully determined by the options and
// the camera placement: identical inputs always produce identical args.
func DriverArgs(opts *job.Options, cam framing.Placement) []string {
	args := []string{
		"--fbx=" + opts.FBXPath,
		"--hdr=" + opts.HDRPath,
		fmt.Sprintf("--width=%d", opts.Width),
		fmt.Sprintf("--height=%d", opts.Height),
		fmt.Sprintf("--samples=%d", opts.Samples),
		"--render=" + opts.RenderPath,
		fmt.Sprintf("--strength=%g", opts.Strength),
		"--cam-pos=" + formatVec(cam.Eye),
		"--cam-target=" + formatVec(cam.Target),
		fmt.Sprintf("--fov=%.6f", cam.FOV),
	}
	if opts.SavePath != "" {
		args = append(args, "--save="+opts.SavePath)
	}
	return args
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("%.6f,%.6f,%.6f", v.X(), v.Y(), v.Z())
}
