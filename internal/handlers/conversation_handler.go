package handlers

import (
	"errors"
	"log"
	"net/http"

	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/services"
	"flowgenie-backend/internal/store"
	"flowgenie-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

// ConversationHandler handles HTTP requests for the chat sidebar.
type ConversationHandler struct {
	service services.ConversationService
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(service services.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// HandleListConversations handles GET /v1/conversations?q=
func (h *ConversationHandler) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListConversations(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("ERROR [ConversationHandler] List: %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to list conversations")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleStartConversation handles POST /v1/conversations
func (h *ConversationHandler) HandleStartConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.StartConversation(r.Context())
	if err != nil {
		log.Printf("ERROR [ConversationHandler] Start: %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to start conversation")
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, conv)
}

// HandleRenameConversation handles PATCH /v1/conversations/{conversationID}
func (h *ConversationHandler) HandleRenameConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	var req models.RenameConversationRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	conv, err := h.service.RenameConversation(r.Context(), id, req.Name)
	if err != nil {
		h.respondServiceError(w, "Rename", id, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, conv)
}

// HandleTogglePin handles POST /v1/conversations/{conversationID}/pin
func (h *ConversationHandler) HandleTogglePin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	resp, err := h.service.TogglePin(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "TogglePin", id, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleSelectConversation handles POST /v1/conversations/{conversationID}/select
func (h *ConversationHandler) HandleSelectConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	conv, err := h.service.SelectConversation(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "Select", id, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, conv)
}

// HandleDeleteConversation handles DELETE /v1/conversations/{conversationID}
func (h *ConversationHandler) HandleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	if err := h.service.DeleteConversation(r.Context(), id); err != nil {
		h.respondServiceError(w, "Delete", id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConversationHandler) respondServiceError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "Conversation not found")
	case errors.Is(err, services.ErrInvalidName):
		httputil.RespondError(w, http.StatusBadRequest, "Chat name cannot be empty.")
	default:
		log.Printf("ERROR [ConversationHandler] %s %s: %v", op, id, err)
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
