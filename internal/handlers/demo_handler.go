package handlers

import (
	"errors"
	"net/http"

	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/services"
	"flowgenie-backend/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

// DemoHandler handles the landing page widgets: the use-case demo and testimonials.
type DemoHandler struct {
	demo *services.DemoService
}

// NewDemoHandler creates a new DemoHandler.
func NewDemoHandler(demo *services.DemoService) *DemoHandler {
	return &DemoHandler{demo: demo}
}

// HandleGetFrame handles GET /v1/demo
func (h *DemoHandler) HandleGetFrame(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.Frame())
}

// HandleNext handles POST /v1/demo/next
func (h *DemoHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.Next())
}

// HandlePrevious handles POST /v1/demo/previous
func (h *DemoHandler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.Previous())
}

// HandleSelect handles PUT /v1/demo/index
func (h *DemoHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	var req models.SelectDemoRequest
	if err := decodeJSON(r, &req); err != nil || req.Index == nil {
		httputil.RespondError(w, http.StatusBadRequest, "Request body must contain an index")
		return
	}
	frame, err := h.demo.Select(*req.Index)
	if err != nil {
		if errors.Is(err, demo.ErrIndexOutOfRange) {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to select example")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, frame)
}

// HandleCopy handles POST /v1/demo/copy
func (h *DemoHandler) HandleCopy(w http.ResponseWriter, r *http.Request) {
	resp, err := h.demo.CopyPayload()
	if err != nil {
		if errors.Is(err, services.ErrPayloadHidden) {
			httputil.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to copy payload")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HandleListExamples handles GET /v1/demo/examples
func (h *DemoHandler) HandleListExamples(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.Examples())
}

// HandleDownloadPayload handles GET /v1/demo/examples/{exampleID}/payload
func (h *DemoHandler) HandleDownloadPayload(w http.ResponseWriter, r *http.Request) {
	body, err := h.demo.Payload(chi.URLParam(r, "exampleID"))
	if err != nil {
		if errors.Is(err, services.ErrExampleNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "Example not found")
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Failed to load payload")
		return
	}
	httputil.RespondAttachment(w, "workflow.json", "application/json", body)
}

// HandleListTestimonials handles GET /v1/testimonials
func (h *DemoHandler) HandleListTestimonials(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.Testimonials())
}

// HandleCurrentTestimonial handles GET /v1/testimonials/current
func (h *DemoHandler) HandleCurrentTestimonial(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.CurrentTestimonial())
}

// HandleNextTestimonial handles POST /v1/testimonials/next
func (h *DemoHandler) HandleNextTestimonial(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.NextTestimonial())
}

// HandlePreviousTestimonial handles POST /v1/testimonials/previous
func (h *DemoHandler) HandlePreviousTestimonial(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.demo.PreviousTestimonial())
}
