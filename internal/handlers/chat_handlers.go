package handlers

import (
	"errors"
	"log"
	"net/http"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/services"
	"flowgenie-backend/internal/store"
	"flowgenie-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

// ChatHandlers handles HTTP requests related to chat views.
type ChatHandlers struct {
	chatService *services.ChatService
}

// NewChatHandlers creates a new ChatHandlers instance.
func NewChatHandlers(chatService *services.ChatService) *ChatHandlers {
	return &ChatHandlers{
		chatService: chatService,
	}
}

// HandleGetMessages handles GET /v1/conversations/{conversationID}/messages
func (h *ChatHandlers) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")
	chat, err := h.chatService.GetChat(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "Conversation not found")
			return
		}
		log.Printf("ERROR [ChatHandlers] GetMessages %s: %v", id, err)
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to get messages")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, chat)
}

// HandleSendMessage handles POST /v1/conversations/{conversationID}/messages.
// The reply is not part of the response; it arrives on the chat stream.
func (h *ChatHandlers) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	var req models.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	chat, err := h.chatService.SendMessage(r.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httputil.RespondError(w, http.StatusNotFound, "Conversation not found")
		case errors.Is(err, services.ErrEmptyMessage):
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrReplyPending):
			httputil.RespondError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("ERROR [ChatHandlers] SendMessage %s: %v", id, err)
			httputil.RespondError(w, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}
	httputil.RespondJSON(w, http.StatusAccepted, models.SendMessageResponse{Chat: *chat})
}

// HandleListPrompts handles GET /v1/prompts
func (h *ChatHandlers) HandleListPrompts(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.ListPromptsResponse{Prompts: catalog.ExamplePrompts()})
}
