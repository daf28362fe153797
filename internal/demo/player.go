// Package demo plays back the scripted use-case demo and the testimonial carousel.
package demo

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"
)

var (
	// ErrNoExamples is returned when a player is built without any example.
	ErrNoExamples = errors.New("demo: no examples")
	// ErrIndexOutOfRange is returned by Select for an index outside the example list.
	ErrIndexOutOfRange = errors.New("demo: index out of range")
)

// Phase is the playback phase of the current example.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseTypingQuestion  Phase = "typing_question"
	PhaseTypingSteps     Phase = "typing_steps"
	PhasePayloadRevealed Phase = "payload_revealed"
)

// Rand is the source of randomness for per-character typing delays.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Timings controls the pace of playback.
type Timings struct {
	StartDelay   time.Duration // Activation to first character
	CharDelayMin time.Duration
	CharDelayMax time.Duration // Exclusive upper bound of the per-character delay
	PhaseDelay   time.Duration // Pause between question, steps and payload
	StepInterval time.Duration
	CopyFeedback time.Duration // How long the "copied" flag stays set
}

// DefaultTimings returns the pacing used on the site.
func DefaultTimings() Timings {
	return Timings{
		StartDelay:   500 * time.Millisecond,
		CharDelayMin: 30 * time.Millisecond,
		CharDelayMax: 80 * time.Millisecond,
		PhaseDelay:   500 * time.Millisecond,
		StepInterval: 300 * time.Millisecond,
		CopyFeedback: 2 * time.Second,
	}
}

// FrameListener receives a snapshot on every playback change. It is called
// with the player's lock held and must not call back into the Player.
type FrameListener func(models.DemoFrame)

// Player types out one DemoExample at a time: question, then steps, then payload.
//
// Each activation gets a generation number. Changing the index cancels every
// task of the previous activation, and any callback that slipped past the
// cancel sees a stale generation and returns without touching state.
type Player struct {
	examples []models.DemoExample
	timings  Timings
	rnd      Rand
	tasks    *schedule.Group

	mu       sync.Mutex
	listener FrameListener
	running  bool
	index    int
	gen      uint64
	question []rune
	state    models.PlaybackState
	phase    Phase
	copied   bool
	copyTask schedule.Task
}

// NewPlayer creates a stopped player positioned on the first example.
func NewPlayer(examples []models.DemoExample, sched schedule.Scheduler, rnd Rand, timings Timings) (*Player, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}
	if sched == nil {
		return nil, fmt.Errorf("demo: scheduler is required")
	}
	if rnd == nil {
		return nil, fmt.Errorf("demo: random source is required")
	}
	p := &Player{
		examples: examples,
		timings:  timings,
		rnd:      rnd,
		tasks:    schedule.NewGroup(sched),
	}
	p.resetLocked()
	return p, nil
}

// SetListener installs the render callback. Pass nil to detach.
func (p *Player) SetListener(l FrameListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listener = l
}

// Start begins playback of the current example. Starting a running player is a no-op.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.activateLocked()
}

// Stop cancels all pending playback and leaves the current example idle.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	dropped := p.tasks.CancelAll()
	p.resetLocked()
	log.Printf("[DemoPlayer] Stopped on example %d, dropped %d pending task(s)", p.index, dropped)
	p.emitLocked()
}

// Running reports whether playback is active.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Next moves to the following example, wrapping to the first.
func (p *Player) Next() models.DemoFrame {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moveLocked((p.index + 1) % len(p.examples))
	return p.frameLocked()
}

// Previous moves to the preceding example, wrapping to the last.
func (p *Player) Previous() models.DemoFrame {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.examples)
	p.moveLocked((p.index - 1 + n) % n)
	return p.frameLocked()
}

// Select jumps to example i. Selecting the current example leaves playback untouched.
func (p *Player) Select(i int) (models.DemoFrame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.examples) {
		return p.frameLocked(), fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(p.examples))
	}
	p.moveLocked(i)
	return p.frameLocked(), nil
}

// MarkCopied flags the revealed payload as copied for the configured feedback
// period and returns it. ok is false while the payload is still hidden.
func (p *Player) MarkCopied() (payload string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.PayloadRevealed {
		return "", false
	}
	if p.copyTask != nil {
		p.copyTask.Cancel()
	}
	p.copied = true
	gen := p.gen
	p.copyTask = p.tasks.AfterFunc(p.timings.CopyFeedback, func() { p.clearCopied(gen) })
	p.emitLocked()
	return p.examples[p.index].Payload, true
}

// Frame returns the current render snapshot.
func (p *Player) Frame() models.DemoFrame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frameLocked()
}

// Examples returns the example list in display order.
func (p *Player) Examples() []models.DemoExample {
	out := make([]models.DemoExample, len(p.examples))
	copy(out, p.examples)
	return out
}

// Example looks up an example by its ID.
func (p *Player) Example(id string) (models.DemoExample, bool) {
	for _, ex := range p.examples {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.DemoExample{}, false
}

func (p *Player) moveLocked(i int) {
	if i == p.index {
		return
	}
	p.index = i
	if !p.running {
		p.resetLocked()
		p.emitLocked()
		return
	}
	p.activateLocked()
}

// activateLocked throws away everything scheduled for the previous activation
// and starts the current example from scratch.
func (p *Player) activateLocked() {
	if dropped := p.tasks.CancelAll(); dropped > 0 {
		log.Printf("[DemoPlayer] Cancelled %d stale task(s) before activating example %d", dropped, p.index)
	}
	p.resetLocked()
	gen := p.gen
	p.emitLocked()
	p.tasks.AfterFunc(p.timings.StartDelay, func() { p.typeChar(gen, 0) })
}

func (p *Player) resetLocked() {
	p.gen++
	p.question = []rune(p.examples[p.index].UserQuestion)
	p.state = models.PlaybackState{StepLines: []string{}}
	p.phase = PhaseIdle
	p.copied = false
	p.copyTask = nil
}

func (p *Player) typeChar(gen uint64, i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	if i < len(p.question) {
		p.phase = PhaseTypingQuestion
		p.state.TypedQuestion = string(p.question[:i+1])
		p.emitLocked()
		p.tasks.AfterFunc(p.charDelay(), func() { p.typeChar(gen, i+1) })
		return
	}
	p.tasks.AfterFunc(p.timings.PhaseDelay, func() { p.typeStep(gen, 0) })
}

func (p *Player) typeStep(gen uint64, i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	steps := p.examples[p.index].Steps
	if i < len(steps) {
		p.phase = PhaseTypingSteps
		p.state.StepLines = append(p.state.StepLines, FormatStep(i, steps[i]))
		p.emitLocked()
		p.tasks.AfterFunc(p.timings.StepInterval, func() { p.typeStep(gen, i+1) })
		return
	}
	p.tasks.AfterFunc(p.timings.PhaseDelay, func() { p.reveal(gen) })
}

func (p *Player) reveal(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return
	}
	p.phase = PhasePayloadRevealed
	p.state.PayloadRevealed = true
	p.emitLocked()
}

func (p *Player) clearCopied(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen || !p.copied {
		return
	}
	p.copied = false
	p.copyTask = nil
	p.emitLocked()
}

func (p *Player) charDelay() time.Duration {
	span := p.timings.CharDelayMax - p.timings.CharDelayMin
	if span <= 0 {
		return p.timings.CharDelayMin
	}
	return p.timings.CharDelayMin + time.Duration(p.rnd.Intn(int(span)))
}

func (p *Player) frameLocked() models.DemoFrame {
	ex := p.examples[p.index]
	lines := make([]string, len(p.state.StepLines))
	copy(lines, p.state.StepLines)

	f := models.DemoFrame{
		Index:      p.index,
		Count:      len(p.examples),
		ExampleID:  ex.ID,
		Phase:      string(p.phase),
		Generation: p.gen,
		PlaybackState: models.PlaybackState{
			TypedQuestion:   p.state.TypedQuestion,
			StepLines:       lines,
			PayloadRevealed: p.state.PayloadRevealed,
		},
		Copied: p.copied,
	}
	if p.state.TypedQuestion == ex.UserQuestion && p.phase != PhaseIdle {
		f.AIResponse = ex.AIResponse
	}
	if p.state.PayloadRevealed {
		f.Payload = ex.Payload
	}
	return f
}

func (p *Player) emitLocked() {
	if p.listener != nil {
		p.listener(p.frameLocked())
	}
}

// FormatStep renders step i (zero-based) as a numbered line.
func FormatStep(i int, s models.Step) string {
	return fmt.Sprintf("%d. %s %s", i+1, s.Title, s.Description)
}
