package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thechaitanyaanand/preseguide-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "preseguide-api",
	Short: "PreseGuide API server",
	Long: `PreseGuide API - A presentation practice and coaching API

Upload practice recordings of a presentation, get them transcribed and
scored on pacing, clarity, and content coverage, and receive AI coaching
feedback. Progress is tracked across iterations with XP, levels, and
achievement badges.

Features:
  • Presentation projects with reference documents (PDF, DOCX, TXT)
  • Background audio analysis with Whisper transcription
  • Pacing, clarity, and coverage scoring with improvement tracking
  • AI coaching feedback and practice Q&A generation
  • Gamified progress: XP, levels, and badges`,
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

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help never need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
