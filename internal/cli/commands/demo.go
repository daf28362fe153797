package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/cli/ui"
	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/randutil"
	"flowgenie-backend/internal/schedule"
	"flowgenie-backend/internal/tui"
)

var listExamples bool

// demoCmd plays the use-case demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "play the scripted use-case demo",
	Long: `Type out each example question, its numbered steps and the resulting
workflow JSON, the same way the landing page does.`,
	Example: `  $ flowgenie demo
  $ flowgenie demo --list

  # Keyboard controls:
  • ←/→ switch examples, 1-9 jump to an example
  • c copy the revealed workflow, q quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&listExamples, "list", false, "list the examples and exit")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if listExamples {
		for i, ex := range catalog.DemoExamples() {
			ui.PrintBold("%d. %s", i+1, ex.ID)
			fmt.Fprintf(ui.Output, "   %s\n", ex.UserQuestion)
		}
		return nil
	}
	if err := requireTerminal("demo"); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	player, err := demo.NewPlayer(catalog.DemoExamples(), schedule.NewClock(), randutil.New(cfg.RandomSeed), demo.Timings{
		StartDelay:   cfg.DemoStartDelay,
		CharDelayMin: cfg.DemoCharDelayMin,
		CharDelayMax: cfg.DemoCharDelayMax,
		PhaseDelay:   cfg.DemoPhaseDelay,
		StepInterval: cfg.DemoStepInterval,
		CopyFeedback: cfg.CopyFeedback,
	})
	if err != nil {
		return fmt.Errorf("failed to create demo player: %w", err)
	}

	// Log lines would tear the full-screen view.
	log.SetOutput(io.Discard)
	copied, err := tui.NewDemo(player).Run()
	if err != nil {
		return fmt.Errorf("failed to run demo TUI: %w", err)
	}
	if n := len(copied); n > 0 {
		fmt.Fprintln(ui.Output, copied[n-1])
		ui.PrintSuccess("copied workflow printed above")
	}
	return nil
}
