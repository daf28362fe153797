package api

import (
	"log"
	"net/http"
	"time"

	"flowgenie-backend/internal/config"
	"flowgenie-backend/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDependencies holds all the dependencies required by the router setup,
// primarily handlers and configuration.
type RouterDependencies struct {
	ConversationHandler *handlers.ConversationHandler
	ChatHandler         *handlers.ChatHandlers
	DemoHandler         *handlers.DemoHandler
	StreamHandler       *handlers.StreamHandler
	Config              *config.Config
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := []string{"*"}
	if deps.Config != nil && len(deps.Config.AllowedOrigins) > 0 {
		origins = deps.Config.AllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Websocket streams are long lived, so they stay outside the request timeout.
	if deps.StreamHandler != nil {
		r.Route("/v1/stream", func(r chi.Router) {
			r.Get("/demo", deps.StreamHandler.HandleDemoStream)
			r.Get("/testimonials", deps.StreamHandler.HandleTestimonialStream)
			r.Get("/conversations/{conversationID}", deps.StreamHandler.HandleChatStream)
		})
	} else {
		log.Println("WARN: StreamHandler dependency is nil, skipping /v1/stream routes.")
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// --- Mount Demo & Testimonial Routes ---
		if deps.DemoHandler != nil {
			r.Route("/v1/demo", func(r chi.Router) {
				r.Get("/", deps.DemoHandler.HandleGetFrame)
				r.Post("/next", deps.DemoHandler.HandleNext)
				r.Post("/previous", deps.DemoHandler.HandlePrevious)
				r.Put("/index", deps.DemoHandler.HandleSelect)
				r.Post("/copy", deps.DemoHandler.HandleCopy)
				r.Get("/examples", deps.DemoHandler.HandleListExamples)
				r.Get("/examples/{exampleID}/payload", deps.DemoHandler.HandleDownloadPayload)
			})
			r.Route("/v1/testimonials", func(r chi.Router) {
				r.Get("/", deps.DemoHandler.HandleListTestimonials)
				r.Get("/current", deps.DemoHandler.HandleCurrentTestimonial)
				r.Post("/next", deps.DemoHandler.HandleNextTestimonial)
				r.Post("/previous", deps.DemoHandler.HandlePreviousTestimonial)
			})
		} else {
			log.Println("WARN: DemoHandler dependency is nil, skipping /v1/demo and /v1/testimonials routes.")
		}

		// --- Mount Conversation Routes ---
		if deps.ConversationHandler != nil {
			r.Route("/v1/conversations", func(r chi.Router) {
				r.Get("/", deps.ConversationHandler.HandleListConversations)
				r.Post("/", deps.ConversationHandler.HandleStartConversation)
				r.Patch("/{conversationID}", deps.ConversationHandler.HandleRenameConversation)
				r.Delete("/{conversationID}", deps.ConversationHandler.HandleDeleteConversation)
				r.Post("/{conversationID}/pin", deps.ConversationHandler.HandleTogglePin)
				r.Post("/{conversationID}/select", deps.ConversationHandler.HandleSelectConversation)

				if deps.ChatHandler != nil {
					r.Get("/{conversationID}/messages", deps.ChatHandler.HandleGetMessages)
					r.Post("/{conversationID}/messages", deps.ChatHandler.HandleSendMessage)
				}
			})
		} else {
			log.Println("WARN: ConversationHandler dependency is nil, skipping /v1/conversations routes.")
		}

		// --- Mount Chat Routes ---
		if deps.ChatHandler != nil {
			r.Get("/v1/prompts", deps.ChatHandler.HandleListPrompts)
		} else {
			log.Println("WARN: ChatHandler dependency is nil, skipping chat message routes.")
		}
	})

	return r
}
