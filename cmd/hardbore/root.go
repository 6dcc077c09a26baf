package main

import (
	"os"

	"github.com/spf13/cobra"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "hardbore",
	Short: "HardBore file-manager backend: crawler, search index, and portal service",
}

func init() {
	home, _ := os.UserHomeDir()
	defaultDataDir := home
	if defaultDataDir != "" {
		defaultDataDir = home + "/.local/share/hardbore"
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir, "directory holding hardbore_index.db")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}
