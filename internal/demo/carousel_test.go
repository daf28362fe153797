package demo

import (
	"testing"
	"time"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"
)

func TestCarouselAutoAdvance(t *testing.T) {
	m := schedule.NewManual(epoch)
	c, err := NewCarousel(catalog.Testimonials(), m, DefaultCarouselInterval)
	if err != nil {
		t.Fatalf("NewCarousel returned error: %v", err)
	}
	var seen []int
	c.SetListener(func(f models.CarouselFrame) { seen = append(seen, f.Index) })
	c.Start()

	m.Advance(4999 * time.Millisecond)
	if c.Frame().Index != 0 {
		t.Fatal("carousel advanced early")
	}
	m.Advance(time.Millisecond)
	if c.Frame().Index != 1 {
		t.Fatalf("expected index 1 after 5s, got %d", c.Frame().Index)
	}
	m.Advance(10 * time.Second)
	if c.Frame().Index != 0 {
		t.Fatalf("expected round-robin back to 0, got %d", c.Frame().Index)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 frames, got %v", seen)
	}
}

func TestCarouselManualNavigationRestartsCountdown(t *testing.T) {
	m := schedule.NewManual(epoch)
	c, err := NewCarousel(catalog.Testimonials(), m, DefaultCarouselInterval)
	if err != nil {
		t.Fatalf("NewCarousel returned error: %v", err)
	}
	c.Start()

	m.Advance(4 * time.Second)
	if f := c.Previous(); f.Index != 2 {
		t.Fatalf("Previous from 0 should wrap to 2, got %d", f.Index)
	}
	m.Advance(4 * time.Second)
	if c.Frame().Index != 2 {
		t.Fatal("countdown was not restarted by manual navigation")
	}
	m.Advance(time.Second)
	if c.Frame().Index != 0 {
		t.Fatalf("expected auto-advance to 0, got %d", c.Frame().Index)
	}

	c.Stop()
	m.Advance(time.Minute)
	if c.Frame().Index != 0 {
		t.Fatal("stopped carousel kept advancing")
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", m.Pending())
	}
}
