package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/chatsim"
	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMailboxKeepsLatest(t *testing.T) {
	b := newMailbox[int]()
	b.offer(1)
	b.offer(2)
	b.offer(3)
	msg := b.wait(func(v int) tea.Msg { return v })()
	if msg.(int) != 3 {
		t.Fatalf("expected latest value 3, got %v", msg)
	}
	select {
	case v := <-b.ch:
		t.Fatalf("mailbox should be empty, got %d", v)
	default:
	}
}

func newTestDemo(t *testing.T) (*Demo, *demo.Player, *schedule.Manual) {
	t.Helper()
	m := schedule.NewManual(epoch)
	p, err := demo.NewPlayer(catalog.DemoExamples(), m, fixedRand(0), demo.DefaultTimings())
	if err != nil {
		t.Fatalf("NewPlayer returned error: %v", err)
	}
	return NewDemo(p), p, m
}

func TestDemoKeys(t *testing.T) {
	d, p, _ := newTestDemo(t)
	p.Start()
	defer p.Stop()

	d.Update(key("right"))
	if d.frame.Index != 1 {
		t.Fatalf("right should move to 1, got %d", d.frame.Index)
	}
	d.Update(key("left"))
	d.Update(key("left"))
	if d.frame.Index != len(catalog.DemoExamples())-1 {
		t.Fatalf("left should wrap to the last example, got %d", d.frame.Index)
	}
	d.Update(key("3"))
	if d.frame.Index != 2 {
		t.Fatalf("3 should select index 2, got %d", d.frame.Index)
	}
	d.Update(key("9"))
	if d.frame.Index != 2 || !strings.Contains(d.status, "No example 9") {
		t.Fatalf("9 should be rejected, got index %d status %q", d.frame.Index, d.status)
	}

	d.Update(key("c"))
	if len(d.copied) != 0 {
		t.Fatal("copied a payload that was not revealed")
	}
	if _, cmd := d.Update(key("q")); cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestDemoRendersPushedFrames(t *testing.T) {
	d, p, m := newTestDemo(t)
	p.Start()
	defer p.Stop()
	m.Advance(time.Minute)

	msg := d.Init()()
	d.Update(msg)
	if !d.frame.PayloadRevealed {
		t.Fatalf("expected the revealed frame, got phase %s", d.frame.Phase)
	}
	view := d.View()
	ex := catalog.DemoExamples()[0]
	if !strings.Contains(view, ex.Steps[0].Title) || !strings.Contains(view, "workflow.json") {
		t.Fatalf("view is missing steps or payload:\n%s", view)
	}

	d.Update(key("c"))
	if len(d.copied) != 1 || d.copied[0] != ex.Payload || !d.frame.Copied {
		t.Fatalf("copy did not record the payload: %+v", d.copied)
	}
}

func TestDemoIgnoresStaleFrames(t *testing.T) {
	d, p, _ := newTestDemo(t)
	p.Start()
	defer p.Stop()
	stale := d.frame
	d.Update(key("right"))
	d.Update(demoFrameMsg{frame: stale})
	if d.frame.Index != 1 {
		t.Fatalf("stale frame replaced the current one, index %d", d.frame.Index)
	}
}

func TestChatSubmitAndReply(t *testing.T) {
	m := schedule.NewManual(epoch)
	sim := chatsim.New("cli", catalog.CannedResponses(), m, fixedRand(1), chatsim.DefaultResponseDelay)
	c := NewChat(sim, catalog.ExamplePrompts())

	if !strings.Contains(renderChat(c.frame, c.prompts, 200), catalog.ExamplePrompts()[0].Text) {
		t.Fatal("empty chat should list the example prompts")
	}

	c.input.SetValue("   ")
	c.Update(key("enter"))
	if len(sim.Messages()) != 0 {
		t.Fatal("blank input was sent")
	}

	c.input.SetValue("archive my invoices")
	c.Update(key("enter"))
	if c.input.Value() != "" || !c.frame.Typing {
		t.Fatalf("expected cleared input and typing indicator, got %q %+v", c.input.Value(), c.frame)
	}

	c.input.SetValue("one more")
	c.Update(key("enter"))
	if c.notice == "" || len(sim.Messages()) != 1 {
		t.Fatal("second message should wait for the reply")
	}

	m.Advance(chatsim.DefaultResponseDelay)
	c.Update(c.waitFrame()())
	if n := len(c.frame.Messages); n != 2 || c.frame.Messages[1].Role != models.RoleAssistant {
		t.Fatalf("expected the reply, got %+v", c.frame.Messages)
	}
}

func TestTestimonialsNavigation(t *testing.T) {
	m := schedule.NewManual(epoch)
	car, err := demo.NewCarousel(catalog.Testimonials(), m, demo.DefaultCarouselInterval)
	if err != nil {
		t.Fatalf("NewCarousel returned error: %v", err)
	}
	v := NewTestimonials(car)
	v.Update(key("left"))
	if v.frame.Index != len(catalog.Testimonials())-1 {
		t.Fatalf("left should wrap, got %d", v.frame.Index)
	}
	if !strings.Contains(v.View(), v.frame.Testimonial.Author) {
		t.Fatal("view is missing the author")
	}
}
