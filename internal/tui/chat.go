package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flowgenie-backend/internal/chatsim"
	"flowgenie-backend/internal/models"
)

const (
	inputCharLimit      = 4000
	defaultWidth        = 80
	defaultHeight       = 24
	inputHeightReserved = 3
	minViewportHeight   = 5
	typingIndicator     = "FlowGenie is typing..."
)

type chatFrameMsg struct{ frame models.ChatFrame }

// Chat is an interactive terminal chat against the simulated assistant.
type Chat struct {
	sim     *chatsim.Simulator
	prompts []models.ExamplePrompt
	frames  *mailbox[models.ChatFrame]

	input   textinput.Model
	history viewport.Model
	frame   models.ChatFrame
	notice  string
	width   int
}

// NewChat attaches a terminal view to sim. prompts are offered while the chat is empty.
func NewChat(sim *chatsim.Simulator, prompts []models.ExamplePrompt) *Chat {
	input := textinput.New()
	input.Placeholder = "Describe the workflow you want to automate"
	input.Focus()
	input.CharLimit = inputCharLimit
	input.Width = defaultWidth - 3
	input.Prompt = promptStyle.Render("> ")

	c := &Chat{
		sim:     sim,
		prompts: prompts,
		frames:  newMailbox[models.ChatFrame](),
		input:   input,
		history: viewport.New(defaultWidth, defaultHeight-inputHeightReserved),
		width:   defaultWidth,
	}
	sim.SetListener(c.frames.offer)
	c.frame = sim.Frame()
	c.refresh()
	return c
}

// Run blocks until the user quits.
func (c *Chat) Run() error {
	defer c.sim.Close()
	_, err := tea.NewProgram(c, tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (c *Chat) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, c.waitFrame())
}

func (c *Chat) waitFrame() tea.Cmd {
	return c.frames.wait(func(f models.ChatFrame) tea.Msg { return chatFrameMsg{frame: f} })
}

// Update implements tea.Model.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case chatFrameMsg:
		c.frame = msg.frame
		c.refresh()
		cmds = append(cmds, c.waitFrame())

	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.history.Width = msg.Width
		c.history.Height = max(msg.Height-inputHeightReserved, minViewportHeight)
		c.input.Width = msg.Width - 3
		c.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return c, tea.Quit
		case tea.KeyEnter:
			c.submit()
			return c, tea.Batch(cmds...)
		case tea.KeyPgUp:
			c.history.ViewUp()
		case tea.KeyPgDown:
			c.history.ViewDown()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

func (c *Chat) submit() {
	text := c.input.Value()
	if strings.TrimSpace(text) == "" {
		return
	}
	if !c.sim.Submit(text) {
		c.notice = dimStyle.Render("Wait for the reply before sending another message.")
		return
	}
	c.notice = ""
	c.input.Reset()
	c.frame = c.sim.Frame()
	c.refresh()
}

func (c *Chat) refresh() {
	c.history.SetContent(renderChat(c.frame, c.prompts, c.width))
	c.history.GotoBottom()
}

// View implements tea.Model.
func (c *Chat) View() string {
	var b strings.Builder
	b.WriteString(c.history.View())
	b.WriteString("\n")
	if c.notice != "" {
		b.WriteString(c.notice)
	}
	b.WriteString("\n")
	b.WriteString(c.input.View())
	return b.String()
}

func renderChat(f models.ChatFrame, prompts []models.ExamplePrompt, width int) string {
	var b strings.Builder
	if len(f.Messages) == 0 {
		b.WriteString(accentStyle.Render("What would you like to automate?"))
		b.WriteString("\n\n")
		for _, p := range prompts {
			b.WriteString(dimStyle.Render(p.Icon + "  " + p.Text))
			b.WriteString("\n")
		}
		return b.String()
	}

	wrap := lipgloss.NewStyle().Width(max(width-2, 20))
	for _, m := range f.Messages {
		if m.IsTyping {
			b.WriteString(dimStyle.Render(typingIndicator))
			b.WriteString("\n")
			continue
		}
		if m.Role == models.RoleUser {
			b.WriteString(boldStyle.Render("You"))
		} else {
			b.WriteString(accentStyle.Render("FlowGenie"))
		}
		b.WriteString(dimStyle.Render("  " + m.Timestamp.Format("15:04")))
		b.WriteString("\n")
		b.WriteString(wrap.Render(m.Content))
		b.WriteString("\n\n")
	}
	return b.String()
}
