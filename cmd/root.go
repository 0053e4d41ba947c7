/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/fbxshot/fbxshot/cmd/internal/logs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fbxshot",
	Short: "Batch-render still images from FBX models",
	Long: `fbxshot drives Blender in background mode to render a still image
of an FBX model lit by an HDR environment map. The model is framed
automatically: fbxshot inspects the FBX geometry, computes its bounding
box and places the camera so the whole model fits the frame.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fbxshot.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fbxshot")
	}

	viper.SetEnvPrefix("fbxshot")
	viper.AutomaticEnv()

	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logs.EnableDebug()
	}

	if err := viper.ReadInConfig(); err == nil {
		logs.Debug.Println("Using config file:", viper.ConfigFileUsed())
	}
}
