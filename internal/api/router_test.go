package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/config"
	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/handlers"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"
	"flowgenie-backend/internal/services"
	"flowgenie-backend/internal/store/memory"
	"flowgenie-backend/internal/stream"
)

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

type testServer struct {
	router http.Handler
	sched  *schedule.Manual
	demo   *services.DemoService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	m := schedule.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	hub := stream.NewHub(cfg.AllowedOrigins)
	st := memory.NewMemoryStore(catalog.SeedConversations())

	chats := services.NewChatService(st, catalog.CannedResponses(), m, fixedRand(0), 1500*time.Millisecond, hub)
	convs := services.NewConversationService(st, chats)

	player, err := demo.NewPlayer(catalog.DemoExamples(), m, fixedRand(0), demo.DefaultTimings())
	if err != nil {
		t.Fatalf("NewPlayer returned error: %v", err)
	}
	carousel, err := demo.NewCarousel(catalog.Testimonials(), m, demo.DefaultCarouselInterval)
	if err != nil {
		t.Fatalf("NewCarousel returned error: %v", err)
	}
	demoSvc := services.NewDemoService(player, carousel, hub)

	router := NewRouter(RouterDependencies{
		ConversationHandler: handlers.NewConversationHandler(convs),
		ChatHandler:         handlers.NewChatHandlers(chats),
		DemoHandler:         handlers.NewDemoHandler(demoSvc),
		StreamHandler:       handlers.NewStreamHandler(hub, st),
		Config:              cfg,
	})
	return &testServer{router: router, sched: m, demo: demoSvc}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestConversationRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/conversations", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var list models.ListConversationsResponse
	decode(t, rec, &list)
	if len(list.Conversations) != 5 || !list.Conversations[0].Pinned {
		t.Fatalf("expected 5 conversations with pinned first, got %+v", list.Conversations)
	}

	rec = s.do(t, http.MethodPost, "/v1/conversations", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start returned %d", rec.Code)
	}
	var created models.Conversation
	decode(t, rec, &created)
	if created.Name != services.DefaultConversationName || !created.Active {
		t.Fatalf("unexpected new conversation %+v", created)
	}

	rec = s.do(t, http.MethodPatch, "/v1/conversations/"+created.ID, models.RenameConversationRequest{Name: "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank rename returned %d", rec.Code)
	}
	rec = s.do(t, http.MethodPatch, "/v1/conversations/"+created.ID, models.RenameConversationRequest{Name: "Invoices"})
	if rec.Code != http.StatusOK {
		t.Fatalf("rename returned %d", rec.Code)
	}

	rec = s.do(t, http.MethodPost, "/v1/conversations/"+created.ID+"/pin", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pin returned %d", rec.Code)
	}
	var pinned models.TogglePinResponse
	decode(t, rec, &pinned)
	if !pinned.Conversation.Pinned || pinned.Message == "" {
		t.Fatalf("unexpected pin response %+v", pinned)
	}

	if rec := s.do(t, http.MethodPost, "/v1/conversations/missing/select", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("select of unknown conversation returned %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, "/v1/conversations/"+created.ID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, "/v1/conversations/"+created.ID, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete returned %d", rec.Code)
	}
}

func TestMessageRoutes(t *testing.T) {
	s := newTestServer(t)
	path := "/v1/conversations/2/messages"

	if rec := s.do(t, http.MethodPost, path, models.SendMessageRequest{Content: "   "}); rec.Code != http.StatusBadRequest {
		t.Fatalf("blank message returned %d", rec.Code)
	}

	rec := s.do(t, http.MethodPost, path, models.SendMessageRequest{Content: "sync my CRM"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("send returned %d: %s", rec.Code, rec.Body.String())
	}
	var sent models.SendMessageResponse
	decode(t, rec, &sent)
	if !sent.Chat.Typing || sent.Chat.Messages[0].Content != "sync my CRM" {
		t.Fatalf("unexpected send response %+v", sent.Chat)
	}

	if rec := s.do(t, http.MethodPost, path, models.SendMessageRequest{Content: "again"}); rec.Code != http.StatusConflict {
		t.Fatalf("send while pending returned %d", rec.Code)
	}

	s.sched.Advance(1500 * time.Millisecond)

	rec = s.do(t, http.MethodGet, path, nil)
	var chat models.ChatFrame
	decode(t, rec, &chat)
	if chat.Typing || len(chat.Messages) != 2 || chat.Messages[1].Role != models.RoleAssistant {
		t.Fatalf("expected the canned reply, got %+v", chat)
	}

	if rec := s.do(t, http.MethodGet, "/v1/conversations/missing/messages", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown conversation returned %d", rec.Code)
	}
	if rec := s.do(t, http.MethodGet, "/v1/prompts", nil); rec.Code != http.StatusOK {
		t.Fatalf("prompts returned %d", rec.Code)
	}
}

func TestDemoRoutes(t *testing.T) {
	s := newTestServer(t)
	s.demo.Start()
	defer s.demo.Stop()

	if rec := s.do(t, http.MethodPut, "/v1/demo/index", map[string]string{}); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing index returned %d", rec.Code)
	}
	if rec := s.do(t, http.MethodPut, "/v1/demo/index", map[string]int{"index": 9}); rec.Code != http.StatusBadRequest {
		t.Fatalf("out of range index returned %d", rec.Code)
	}

	rec := s.do(t, http.MethodPut, "/v1/demo/index", map[string]int{"index": 2})
	var frame models.DemoFrame
	decode(t, rec, &frame)
	if frame.Index != 2 || frame.TypedQuestion != "" {
		t.Fatalf("unexpected frame after select %+v", frame)
	}

	if rec := s.do(t, http.MethodPost, "/v1/demo/copy", nil); rec.Code != http.StatusConflict {
		t.Fatalf("copy before reveal returned %d", rec.Code)
	}
	s.sched.Advance(time.Minute)
	rec = s.do(t, http.MethodPost, "/v1/demo/copy", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("copy after reveal returned %d", rec.Code)
	}
	var copied models.CopyPayloadResponse
	decode(t, rec, &copied)
	if !copied.Frame.Copied || copied.Payload == "" {
		t.Fatalf("unexpected copy response %+v", copied)
	}

	rec = s.do(t, http.MethodPost, "/v1/demo/next", nil)
	decode(t, rec, &frame)
	if frame.Index != 3 {
		t.Fatalf("next from 2 returned index %d", frame.Index)
	}

	rec = s.do(t, http.MethodGet, "/v1/demo/examples/data-sync/payload", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("payload download returned %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="workflow.json"` {
		t.Fatalf("unexpected Content-Disposition %q", got)
	}
	if !json.Valid(rec.Body.Bytes()) {
		t.Fatal("downloaded payload is not valid JSON")
	}
	if rec := s.do(t, http.MethodGet, "/v1/demo/examples/nope/payload", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown example returned %d", rec.Code)
	}
}

func TestTestimonialRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/testimonials/previous", nil)
	var f models.CarouselFrame
	decode(t, rec, &f)
	if f.Index != f.Count-1 {
		t.Fatalf("previous from 0 should wrap to the last item, got %d of %d", f.Index, f.Count)
	}

	rec = s.do(t, http.MethodGet, "/v1/testimonials", nil)
	var list models.ListTestimonialsResponse
	decode(t, rec, &list)
	if len(list.Testimonials) != f.Count {
		t.Fatalf("expected %d testimonials, got %d", f.Count, len(list.Testimonials))
	}
}
