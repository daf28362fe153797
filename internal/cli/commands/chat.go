package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/chatsim"
	"flowgenie-backend/internal/randutil"
	"flowgenie-backend/internal/schedule"
	"flowgenie-backend/internal/tui"
)

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "chat with the simulated assistant",
	Long: `Start an interactive chat. Every message is answered with a canned
reply after a short typing delay.`,
	Example: `  $ flowgenie chat

  # Keyboard controls:
  • Enter sends, PgUp/PgDn scroll
  • Esc quits`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	if err := requireTerminal("chat"); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sim := chatsim.New(uuid.NewString(), catalog.CannedResponses(), schedule.NewClock(), randutil.New(cfg.RandomSeed), cfg.ChatResponseDelay)
	log.SetOutput(io.Discard)
	if err := tui.NewChat(sim, catalog.ExamplePrompts()).Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}
	return nil
}
