package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowgenie-backend/internal/api"
	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/config"
	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/handlers"
	"flowgenie-backend/internal/randutil"
	"flowgenie-backend/internal/schedule"
	"flowgenie-backend/internal/services"
	"flowgenie-backend/internal/store/memory"
	"flowgenie-backend/internal/stream"
)

func main() {
	log.Println("Starting FlowGenie Backend...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize Dependencies (Store, Scheduler, Stream Hub)
	memStore := memory.NewMemoryStore(catalog.SeedConversations())
	log.Println("In-memory conversation store initialized.")

	clock := schedule.NewClock()
	rnd := randutil.New(cfg.RandomSeed)
	hub := stream.NewHub(cfg.AllowedOrigins)
	log.Println("Stream hub initialized.")

	// --- Initialize Services ---
	chatService := services.NewChatService(memStore, catalog.CannedResponses(), clock, rnd, cfg.ChatResponseDelay, hub)
	log.Println("ChatService initialized.")
	conversationService := services.NewConversationService(memStore, chatService)
	log.Println("ConversationService initialized.")

	player, err := demo.NewPlayer(catalog.DemoExamples(), clock, rnd, demo.Timings{
		StartDelay:   cfg.DemoStartDelay,
		CharDelayMin: cfg.DemoCharDelayMin,
		CharDelayMax: cfg.DemoCharDelayMax,
		PhaseDelay:   cfg.DemoPhaseDelay,
		StepInterval: cfg.DemoStepInterval,
		CopyFeedback: cfg.CopyFeedback,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to create demo player: %v", err)
	}
	carousel, err := demo.NewCarousel(catalog.Testimonials(), clock, cfg.CarouselInterval)
	if err != nil {
		log.Fatalf("FATAL: Failed to create testimonial carousel: %v", err)
	}
	demoService := services.NewDemoService(player, carousel, hub)
	demoService.Start()
	log.Println("DemoService initialized.")

	// --- Initialize Handlers ---
	routerDeps := api.RouterDependencies{
		ConversationHandler: handlers.NewConversationHandler(conversationService),
		ChatHandler:         handlers.NewChatHandlers(chatService),
		DemoHandler:         handlers.NewDemoHandler(demoService),
		StreamHandler:       handlers.NewStreamHandler(hub, memStore),
		Config:              cfg,
	}
	router := api.NewRouter(routerDeps)
	log.Println("HTTP router configured.")

	// 3. Configure and Start HTTP Server
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// No WriteTimeout: websocket streams stay open.
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting and listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on %s: %v\n", cfg.HTTPPort, err)
		}
		log.Println("Server listener routine stopped.")
	}()

	<-stopChan
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	// Stop timers first so nothing publishes into closing connections.
	demoService.Stop()
	chatService.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server graceful shutdown failed: %v", err)
		log.Fatal("Forcing shutdown due to error.")
	}

	log.Println("Server shutdown complete.")
}
