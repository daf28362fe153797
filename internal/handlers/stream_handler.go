package handlers

import (
	"net/http"

	"flowgenie-backend/internal/services"
	"flowgenie-backend/internal/store"
	"flowgenie-backend/internal/stream"
	"flowgenie-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

// StreamHandler upgrades render-surface subscriptions to websockets.
type StreamHandler struct {
	hub   *stream.Hub
	store store.Store
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(hub *stream.Hub, s store.Store) *StreamHandler {
	return &StreamHandler{hub: hub, store: s}
}

// HandleDemoStream handles GET /v1/stream/demo
func (h *StreamHandler) HandleDemoStream(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r, services.DemoTopic)
}

// HandleTestimonialStream handles GET /v1/stream/testimonials
func (h *StreamHandler) HandleTestimonialStream(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r, services.TestimonialsTopic)
}

// HandleChatStream handles GET /v1/stream/conversations/{conversationID}
func (h *StreamHandler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	if _, err := h.store.GetConversation(r.Context(), id); err != nil {
		httputil.RespondError(w, http.StatusNotFound, "Conversation not found")
		return
	}
	h.hub.ServeWS(w, r, services.ChatTopic(id))
}
