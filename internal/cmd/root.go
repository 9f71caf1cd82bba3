package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "accountlens",
	Short: "Telegram account analyzer bot",
	Long:  `accountlens analyzes Telegram accounts and estimates registration date, country/region, and last-seen status from the signals the platform exposes.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "Path to configuration file")
}
