package services

import (
	"errors"
	"fmt"
	"log"

	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/models"
)

// Stream topics of the landing page widgets.
const (
	DemoTopic         = "demo"
	TestimonialsTopic = "testimonials"
)

// Custom errors for the demo service
var (
	ErrExampleNotFound = errors.New("demo example not found")
	ErrPayloadHidden   = errors.New("payload has not been revealed yet")
)

// DemoService drives the use-case demo and the testimonial carousel and
// publishes their frames.
type DemoService struct {
	player   *demo.Player
	carousel *demo.Carousel
}

// NewDemoService wires the player and carousel to pub. pub may be nil.
func NewDemoService(player *demo.Player, carousel *demo.Carousel, pub Publisher) *DemoService {
	if pub != nil {
		player.SetListener(func(f models.DemoFrame) { pub.Publish(DemoTopic, f) })
		carousel.SetListener(func(f models.CarouselFrame) { pub.Publish(TestimonialsTopic, f) })
	}
	return &DemoService{player: player, carousel: carousel}
}

// Start begins demo playback and carousel rotation.
func (s *DemoService) Start() {
	s.player.Start()
	s.carousel.Start()
	log.Println("[DemoService] Demo playback and testimonial rotation started.")
}

// Stop cancels everything scheduled by the demo and the carousel.
func (s *DemoService) Stop() {
	s.player.Stop()
	s.carousel.Stop()
}

// Frame returns the current demo frame.
func (s *DemoService) Frame() models.DemoFrame {
	return s.player.Frame()
}

// Next moves the demo to the following example.
func (s *DemoService) Next() models.DemoFrame {
	return s.player.Next()
}

// Previous moves the demo to the preceding example.
func (s *DemoService) Previous() models.DemoFrame {
	return s.player.Previous()
}

// Select jumps the demo to example index.
func (s *DemoService) Select(index int) (models.DemoFrame, error) {
	return s.player.Select(index)
}

// CopyPayload marks the revealed payload as copied and returns it.
func (s *DemoService) CopyPayload() (*models.CopyPayloadResponse, error) {
	payload, ok := s.player.MarkCopied()
	if !ok {
		return nil, ErrPayloadHidden
	}
	return &models.CopyPayloadResponse{Payload: payload, Frame: s.player.Frame()}, nil
}

// Examples lists the demo scripts.
func (s *DemoService) Examples() *models.ListExamplesResponse {
	return &models.ListExamplesResponse{Examples: s.player.Examples()}
}

// Payload returns the workflow JSON of an example for download.
func (s *DemoService) Payload(exampleID string) ([]byte, error) {
	ex, ok := s.player.Example(exampleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExampleNotFound, exampleID)
	}
	return []byte(ex.Payload), nil
}

// Testimonials lists every testimonial.
func (s *DemoService) Testimonials() *models.ListTestimonialsResponse {
	return &models.ListTestimonialsResponse{Testimonials: s.carousel.Items()}
}

// CurrentTestimonial returns the testimonial on screen.
func (s *DemoService) CurrentTestimonial() models.CarouselFrame {
	return s.carousel.Frame()
}

// NextTestimonial advances the carousel and restarts its countdown.
func (s *DemoService) NextTestimonial() models.CarouselFrame {
	return s.carousel.Next()
}

// PreviousTestimonial steps the carousel back and restarts its countdown.
func (s *DemoService) PreviousTestimonial() models.CarouselFrame {
	return s.carousel.Previous()
}
