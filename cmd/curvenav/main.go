// Package main is the entry point for the CurveNav demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/config"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/tui"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "curvenav",
		Short:   "CurveNav — interactive channel navigator for animation curves",
		Version: version,
	}

	root.AddCommand(
		demoCmd(),
		initCmd(),
	)

	return root
}

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive navigator demo on a sample channel set",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			return tui.Run(tui.SampleDocument(), cfg)
		},
	}
	cmd.Flags().String("config", "", "path to curvenav.toml (default: search upward)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create curvenav.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

// loadConfig loads the configuration, falling back to defaults when no
// curvenav.toml exists anywhere up the tree.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if path != "" {
			return nil, err
		}
		defaults := config.Defaults()
		return &defaults, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
