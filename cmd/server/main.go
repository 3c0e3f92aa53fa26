package main

import (
	"fmt"
	"os"

	"github.com/blues/adagency/internal/config"
	"github.com/blues/adagency/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "adagency",
	Short: "Advertising agency site backend",
	Long: `Serves the public content feeds, lead intake, the price calculator
and the admin console API of the agency website.

Running without a subcommand is the same as "adagency serve".`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: ./config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	return logger.Setup(cfg.Log.Level, cfg.Log.Output, cfg.Log.File)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
