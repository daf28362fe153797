package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/models"
)

type carouselFrameMsg struct{ frame models.CarouselFrame }

// Testimonials is the terminal rendering of the testimonial carousel.
type Testimonials struct {
	carousel *demo.Carousel
	frames   *mailbox[models.CarouselFrame]
	frame    models.CarouselFrame
}

// NewTestimonials attaches a terminal view to carousel.
func NewTestimonials(carousel *demo.Carousel) *Testimonials {
	t := &Testimonials{
		carousel: carousel,
		frames:   newMailbox[models.CarouselFrame](),
	}
	carousel.SetListener(t.frames.offer)
	t.frame = carousel.Frame()
	return t
}

// Run starts the rotation and blocks until the user quits.
func (t *Testimonials) Run() error {
	t.carousel.Start()
	defer func() {
		t.carousel.Stop()
		t.carousel.SetListener(nil)
	}()
	_, err := tea.NewProgram(t).Run()
	return err
}

// Init implements tea.Model.
func (t *Testimonials) Init() tea.Cmd {
	return t.waitFrame()
}

func (t *Testimonials) waitFrame() tea.Cmd {
	return t.frames.wait(func(f models.CarouselFrame) tea.Msg { return carouselFrameMsg{frame: f} })
}

// Update implements tea.Model.
func (t *Testimonials) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case carouselFrameMsg:
		t.frame = msg.frame
		return t, t.waitFrame()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return t, tea.Quit
		case "right", "l", "n":
			t.frame = t.carousel.Next()
		case "left", "h", "p":
			t.frame = t.carousel.Previous()
		}
	}
	return t, nil
}

// View implements tea.Model.
func (t *Testimonials) View() string {
	var b strings.Builder
	item := t.frame.Testimonial
	b.WriteString(fmt.Sprintf("%q", item.Quote))
	b.WriteString("\n\n")
	b.WriteString(boldStyle.Render(item.Author))
	b.WriteString(dimStyle.Render("  " + item.Role))
	b.WriteString("\n\n")
	b.WriteString(dots(t.frame.Index, t.frame.Count))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("←/→ browse  q quit"))
	return panelStyle.Width(72).Render(b.String()) + "\n"
}
