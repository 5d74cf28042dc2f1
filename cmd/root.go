// Package cmd implements the gopoly command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/gopoly/internal/app"
	"github.com/philipparndt/gopoly/internal/arcade"
	"github.com/philipparndt/gopoly/internal/config"
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/version"
	"github.com/spf13/cobra"
)

const (
	backendRaylib = "raylib"
	backendEbiten = "ebiten"
)

var (
	backend    string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gopoly",
	Short: "Interactive regular polygon editor",
	Long: `gopoly places regular polygons on a canvas from a palette.
Click a palette entry, then click the canvas to place it. Click near a shape
to select it, drag with the left button to resize and with the right button
to rotate. Delete removes the selected shape.`,
	Args:              cobra.NoArgs,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runEditor,
}

func init() {
	rootCmd.Flags().StringVarP(&backend, "backend", "b", backendRaylib, "Window backend: raylib or ebiten")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (default is gopoly/gopoly.toml in the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	_, err := logging.Setup(cmd.ErrOrStderr(), logLevel)
	return err
}

func runEditor(cmd *cobra.Command, _ []string) error {
	cfg, path := config.Resolve(configPath)

	switch strings.ToLower(backend) {
	case backendRaylib:
		return app.Run(cfg, path)
	case backendEbiten:
		return arcade.Run(cfg, path)
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", backend, backendRaylib, backendEbiten)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
