package cmd

import (
	"os"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/logs"
	"github.com/fbxshot/fbxshot/cmd/internal/publish"
	"github.com/fbxshot/fbxshot/cmd/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a still image of an FBX model",
	Long: `Import an FBX model and an HDR environment map, frame the model in
an auto-placed camera and render one still image through Blender.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd)
		err := render.Still(cmd.Context(), opts, blenderFromConfig(cmd), uploadFromConfig())
		if err != nil {
			logs.Err.Println(err)
			os.Exit(job.ExitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addJobFlags(renderCmd)
}

// addJobFlags registers the pipeline flags shared by render and preview.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("fbx", "F", "", "FBX model file to render")
	cmd.Flags().StringP("hdr", "H", "", "HDR environment map for image based lighting")
	cmd.Flags().IntP("width", "x", 0, "output image width in pixels")
	cmd.Flags().IntP("height", "y", 0, "output image height in pixels")
	cmd.Flags().IntP("samples", "s", 0, "render sample count")
	cmd.Flags().StringP("render", "r", "", "output image path (.png, .jpg or .exr)")
	cmd.Flags().StringP("save", "S", "", "write the project file here after a successful render")
	cmd.Flags().String("thumb", "", "write a thumbnail here (.png or .webp)")
	cmd.Flags().String("upload", "", "upload the render to object storage as bucket/key")
	cmd.Flags().Float64("strength", 1.5, "environment light strength")
	cmd.Flags().Duration("timeout", 0, "abort the render after this duration")
	cmd.Flags().String("blender", "", "path to the blender executable")
}

func optionsFromFlags(cmd *cobra.Command) *job.Options {
	flags := cmd.Flags()
	opts := &job.Options{}

	opts.FBXPath, _ = flags.GetString("fbx")
	opts.HDRPath, _ = flags.GetString("hdr")
	opts.Width, _ = flags.GetInt("width")
	opts.Height, _ = flags.GetInt("height")
	opts.Samples, _ = flags.GetInt("samples")
	opts.RenderPath, _ = flags.GetString("render")
	opts.SavePath, _ = flags.GetString("save")
	opts.ThumbPath, _ = flags.GetString("thumb")
	opts.UploadDest, _ = flags.GetString("upload")
	opts.Strength, _ = flags.GetFloat64("strength")
	opts.Timeout, _ = flags.GetDuration("timeout")

	// Config file defaults apply when the flag was not given.
	if !flags.Changed("samples") && viper.IsSet("samples") {
		opts.Samples = viper.GetInt("samples")
	}
	if !flags.Changed("strength") && viper.IsSet("strength") {
		opts.Strength = viper.GetFloat64("strength")
	}
	return opts
}

func blenderFromConfig(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("blender"); p != "" {
		return p
	}
	return viper.GetString("blender_path")
}

func uploadFromConfig() publish.Config {
	return publish.Config{
		Endpoint:  viper.GetString("upload_endpoint"),
		AccessKey: viper.GetString("upload_access_key"),
		SecretKey: viper.GetString("upload_secret_key"),
		UseSSL:    viper.GetBool("upload_ssl"),
	}
}
