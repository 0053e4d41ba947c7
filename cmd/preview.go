package cmd

import (
	"os"

	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/fbxshot/fbxshot/cmd/internal/logs"
	"github.com/fbxshot/fbxshot/cmd/internal/preview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Re-render whenever the inputs change",
	Long: `Render the model once, then watch the FBX and HDR files and render
again on every change. Useful while iterating on a model or a lighting
setup.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd)
		err := preview.Watch(cmd.Context(), opts, blenderFromConfig(cmd), uploadFromConfig())
		if err != nil {
			logs.Err.Println(err)
			os.Exit(job.ExitCode(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addJobFlags(previewCmd)
}
