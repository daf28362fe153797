package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flowgenie-backend/internal/cli/ui"
	"flowgenie-backend/internal/config"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "flowgenie",
	Short:   "FlowGenie terminal playground",
	Version: version,
	Long: `Play the FlowGenie landing page widgets in a terminal: the scripted
use-case demo, the simulated assistant chat and the testimonial carousel.

Timings are read from the same environment variables (or .env file) as the server.`,
	Example: `  # Watch the use-case demo
  $ flowgenie demo

  # Chat with the simulated assistant
  $ flowgenie chat

  # Browse testimonials
  $ flowgenie testimonials`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive(os.Stdout) {
			ui.DisableColor()
		}
		return nil
	},
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(fmt.Sprintf("flowgenie version %s\n", version))
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(testimonialsCmd)
}

// requireTerminal refuses to start a full-screen view on a pipe.
func requireTerminal(name string) error {
	if !ui.IsInteractive(os.Stdin) || !ui.IsInteractive(os.Stdout) {
		ui.PrintError("%s needs an interactive terminal", name)
		return fmt.Errorf("not a terminal")
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	return cfg, nil
}
