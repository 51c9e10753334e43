package cmd

import (
	"fmt"
	"os"

	"github.com/cardiolab/ecg-annotator-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ecg-annotator-api",
	Short: "ECG Annotator API server",
	Long: `ECG Annotator API - a signal synthesis and annotation overlay service

This API synthesizes repeating ECG-like waveforms, lets annotators place and
query time-indexed markers over them, runs simulated beat detection, and
moves each session through a lightweight quality review workflow.

Features:
  • Deterministic ECG waveform synthesis (P-QRS-T morphology plus noise)
  • Manual and auto-detected annotations with per-session id sequences
  • Zoom-windowed viewport with marker render anchors
  • Export/import of annotation interchange documents
  • Session quality workflow with deferred auto-approval`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads configuration for commands that need it
func initConfig() {
	// Version and help never touch config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
