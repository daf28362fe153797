package models

// Step is one numbered line of a demo answer.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DemoExample is a scripted question/answer pair played back by the use-case demo.
type DemoExample struct {
	ID           string `json:"id"`
	UserQuestion string `json:"user_question"`
	AIResponse   string `json:"ai_response"`
	Steps        []Step `json:"steps"`
	Payload      string `json:"payload"` // Workflow JSON revealed at the end of playback
}

// PlaybackState is the per-activation progress of a demo example.
type PlaybackState struct {
	TypedQuestion   string   `json:"typed_question"`
	StepLines       []string `json:"step_lines"`
	PayloadRevealed bool     `json:"payload_revealed"`
}

// DemoFrame is pushed to the render surface every time playback changes.
type DemoFrame struct {
	Index      int    `json:"index"`
	Count      int    `json:"count"`
	ExampleID  string `json:"example_id"`
	Phase      string `json:"phase"`
	Generation uint64 `json:"generation"`
	PlaybackState
	AIResponse string `json:"ai_response,omitempty"` // Set once the question is fully typed
	Payload    string `json:"payload,omitempty"`     // Set once the payload is revealed
	Copied     bool   `json:"copied"`
}

// Testimonial is a customer quote shown by the carousel.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// CarouselFrame is the carousel's render state.
type CarouselFrame struct {
	Index       int         `json:"index"`
	Count       int         `json:"count"`
	Testimonial Testimonial `json:"testimonial"`
}

// ExamplePrompt is a suggestion offered on the empty chat screen.
type ExamplePrompt struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}
