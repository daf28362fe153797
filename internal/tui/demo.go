package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/models"
)

type demoFrameMsg struct{ frame models.DemoFrame }

// Demo is the terminal rendering of the use-case demo.
type Demo struct {
	player   *demo.Player
	examples []models.DemoExample
	frames   *mailbox[models.DemoFrame]

	frame  models.DemoFrame
	status string
	// Copied payloads are returned to the caller after the program exits.
	copied []string
}

// NewDemo attaches a terminal view to player. The player must not be running yet.
func NewDemo(player *demo.Player) *Demo {
	d := &Demo{
		player:   player,
		examples: player.Examples(),
		frames:   newMailbox[models.DemoFrame](),
	}
	player.SetListener(d.frames.offer)
	d.frame = player.Frame()
	return d
}

// Run starts playback and blocks until the user quits. It returns every
// payload copied during the session.
func (d *Demo) Run() ([]string, error) {
	d.player.Start()
	defer func() {
		d.player.Stop()
		d.player.SetListener(nil)
	}()
	final, err := tea.NewProgram(d, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return final.(*Demo).copied, nil
}

// Init implements tea.Model.
func (d *Demo) Init() tea.Cmd {
	return d.waitFrame()
}

func (d *Demo) waitFrame() tea.Cmd {
	return d.frames.wait(func(f models.DemoFrame) tea.Msg { return demoFrameMsg{frame: f} })
}

// Update implements tea.Model.
func (d *Demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case demoFrameMsg:
		// Frames from a superseded activation may still be in flight.
		if msg.frame.Generation >= d.frame.Generation {
			d.frame = msg.frame
		}
		return d, d.waitFrame()

	case tea.KeyMsg:
		return d, d.handleKey(msg)
	}
	return d, nil
}

func (d *Demo) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "right", "l", "n":
		d.frame = d.player.Next()
		d.status = ""
	case "left", "h", "p":
		d.frame = d.player.Previous()
		d.status = ""
	case "c":
		if payload, ok := d.player.MarkCopied(); ok {
			d.copied = append(d.copied, payload)
			d.status = okStyle.Render("Copied!")
		} else {
			d.status = dimStyle.Render("The workflow is not ready yet.")
		}
		d.frame = d.player.Frame()
	default:
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			f, err := d.player.Select(int(k[0] - '1'))
			if err != nil {
				d.status = errorStyle.Render(fmt.Sprintf("No example %s.", k))
				return nil
			}
			d.frame = f
			d.status = ""
		}
	}
	return nil
}

// View implements tea.Model.
func (d *Demo) View() string {
	var b strings.Builder
	f := d.frame

	b.WriteString(accentStyle.Render(fmt.Sprintf("FlowGenie demo  %d/%d", f.Index+1, f.Count)))
	b.WriteString("  ")
	b.WriteString(dots(f.Index, f.Count))
	b.WriteString("\n\n")

	b.WriteString(boldStyle.Render("You"))
	b.WriteString("\n")
	b.WriteString(f.TypedQuestion)
	if f.Phase == string(demo.PhaseTypingQuestion) || f.Phase == string(demo.PhaseIdle) {
		b.WriteString(cursor)
	}
	b.WriteString("\n")

	if f.AIResponse != "" {
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("FlowGenie"))
		b.WriteString("\n")
		b.WriteString(f.AIResponse)
		b.WriteString("\n")
		for _, line := range f.StepLines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if f.PayloadRevealed {
		b.WriteString("\n")
		label := "workflow.json  [c] copy"
		if f.Copied {
			label = "workflow.json  " + okStyle.Render("copied")
		}
		b.WriteString(dimStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(payloadStyle.Render(f.Payload))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if d.status != "" {
		b.WriteString(d.status)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("←/→ switch  1-%d jump  c copy  q quit", min(len(d.examples), 9))))
	return panelStyle.Render(b.String())
}

// dots renders the position indicator, one dot per item.
func dots(active, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i == active {
			b.WriteString(accentStyle.Render("●"))
		} else {
			b.WriteString(dimStyle.Render("○"))
		}
	}
	return b.String()
}
