// Package main implements the entry point for Sweep.
//
// This package handles:
//   - Command-line flags for theme, auto-restart, and ASCII rendering
//   - Loading user preferences from the config directory
//   - TUI initialization and execution
//
// The stopwatch itself lives in the internal packages; main only wires
// preferences into the model and hands control to Bubble Tea.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sweep/internal"
)

var (
	flagTheme       string
	flagAutoRestart bool
	flagASCII       bool
)

var rootCmd = &cobra.Command{
	Use:     "sweep",
	Short:   internal.AppDesc,
	Long:    internal.GetAppTitle() + "\n\nA stopwatch that counts up, replays back down to zero, and\noptionally restarts itself, rendered as a circular progress ring.",
	Version: internal.GetVersionString(),
	RunE:    run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: "+strings.Join(internal.ThemeNames(), ", "))
	rootCmd.Flags().BoolVar(&flagAutoRestart, "auto-restart", false, "restart the stopwatch when a countdown reaches zero")
	rootCmd.Flags().BoolVar(&flagASCII, "ascii", false, "force ASCII symbols for terminals without Unicode support")
}

func run(cmd *cobra.Command, args []string) error {
	if flagASCII {
		internal.ForceASCII()
	}

	configDir, err := internal.DefaultConfigDir()
	if err != nil {
		// No home directory: run with defaults, skip persistence.
		configDir = ""
	}

	cfg := internal.DefaultConfig()
	if configDir != "" {
		cfg, err = internal.LoadConfig(configDir)
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("theme") {
		if _, err := internal.ThemeByName(flagTheme); err != nil {
			return err
		}
		cfg.Theme = flagTheme
	}
	if cmd.Flags().Changed("auto-restart") {
		cfg.AutoRestart = flagAutoRestart
	}

	m := internal.InitialModel(cfg, configDir)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %v", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
