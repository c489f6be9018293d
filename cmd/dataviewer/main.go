package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vango-dev/dataviewer/internal/config"
	"github.com/vango-dev/dataviewer/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleName    = lipgloss.NewStyle().Bold(true)
)

// app holds what every command needs after flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dataviewer",
		Short: "Render data documents to self-contained HTML",
		Long: `dataviewer builds HTML documents from YAML definitions.

Documents combine layout containers, headers, tags, inputs, media,
JSON trees and data tables. Table data can come inline or from JSON,
YAML or msgpack files, and cells holding image or video references
are rendered as media.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to dataviewer.json (default: search from the working directory)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(
		renderCmd(a),
		serveCmd(a),
		renderersCmd(a),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Discover(a.configPath, wd)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.LogLevel()

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", styleWarn.Render("⚠"), fmt.Sprintf(format, args...))
}
