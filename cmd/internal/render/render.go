package render

import (
	"context"

	"github.com/fbxshot/fbxshot/cmd/internal/blender"
	"github.com/fbxshot/fbxshot/cmd/internal/framing"
	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/logs"
	"github.com/fbxshot/fbxshot/cmd/internal/probe"
	"github.com/fbxshot/fbxshot/cmd/internal/publish"
	"github.com/fbxshot/fbxshot/cmd/internal/thumb"
)

// Still runs the whole pipeline once: validate the options, probe the
// inputs, frame the camera, render in the host, then produce the
// optional outputs. Every step receives what it needs as parameters;
// nothing is read from ambient state.
func Still(ctx context.Context, opts *job.Options, blenderPath string, upload publish.Config) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	model, err := probe.InspectFBX(opts.FBXPath)
	if err != nil {
		return err
	}
	env, err := probe.InspectHDR(opts.HDRPath)
	if err != nil {
		return err
	}

	logs.Info.Printf("Model: %d meshes, %d vertices\n", model.Meshes, model.Vertices)
	logs.Info.Printf("Environment: %dx%d\n", env.Width, env.Height)
	if model.Vertices == 0 {
		logs.Warn.Println("No geometry found, camera falls back to the minimum distance")
	}

	cam := framing.Frame(model.Bounds, opts.Aspect())
	logs.Debug.Printf("Camera: eye=%v target=%v distance=%.3f\n", cam.Eye, cam.Target, cam.Distance)

	if err := blender.Run(ctx, opts, cam, blenderPath); err != nil {
		return err
	}
	logs.Info.Println("Rendered", opts.RenderPath)

	if opts.ThumbPath != "" {
		if err := thumb.Generate(opts.RenderPath, opts.ThumbPath, thumb.DefaultSize); err != nil {
			return err
		}
		logs.Info.Println("Thumbnail", opts.ThumbPath)
	}

	if opts.UploadDest != "" {
		if err := publish.Upload(ctx, upload, opts.UploadDest, opts.RenderPath); err != nil {
			return err
		}
	}

	return nil
}
