package demo

import (
	"sync"
	"time"

	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"
)

// DefaultCarouselInterval is how long a testimonial stays on screen.
const DefaultCarouselInterval = 5 * time.Second

// CarouselListener receives the carousel state after every move.
// Like FrameListener it runs under the carousel's lock.
type CarouselListener func(models.CarouselFrame)

// Carousel rotates through testimonials round-robin. Manual navigation
// restarts the countdown.
type Carousel struct {
	items    []models.Testimonial
	interval time.Duration
	tasks    *schedule.Group

	mu       sync.Mutex
	listener CarouselListener
	running  bool
	current  int
}

// NewCarousel creates a stopped carousel on the first item.
func NewCarousel(items []models.Testimonial, sched schedule.Scheduler, interval time.Duration) (*Carousel, error) {
	if len(items) == 0 {
		return nil, ErrNoExamples
	}
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{
		items:    items,
		interval: interval,
		tasks:    schedule.NewGroup(sched),
	}, nil
}

// SetListener installs the render callback.
func (c *Carousel) SetListener(l CarouselListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

// Start arms the auto-advance timer.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.armLocked()
}

// Stop cancels auto-advance.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.tasks.CancelAll()
}

// Next shows the following testimonial.
func (c *Carousel) Next() models.CarouselFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moveLocked((c.current + 1) % len(c.items))
	return c.frameLocked()
}

// Previous shows the preceding testimonial.
func (c *Carousel) Previous() models.CarouselFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.moveLocked((c.current - 1 + n) % n)
	return c.frameLocked()
}

// Frame returns the testimonial on screen.
func (c *Carousel) Frame() models.CarouselFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

// Items returns all testimonials in order.
func (c *Carousel) Items() []models.Testimonial {
	out := make([]models.Testimonial, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Carousel) moveLocked(i int) {
	c.current = i
	if c.listener != nil {
		c.listener(c.frameLocked())
	}
	if c.running {
		c.armLocked()
	}
}

func (c *Carousel) armLocked() {
	c.tasks.CancelAll()
	c.tasks.AfterFunc(c.interval, c.tick)
}

func (c *Carousel) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.moveLocked((c.current + 1) % len(c.items))
}

func (c *Carousel) frameLocked() models.CarouselFrame {
	return models.CarouselFrame{
		Index:       c.current,
		Count:       len(c.items),
		Testimonial: c.items[c.current],
	}
}
