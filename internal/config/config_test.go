package config

import (
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://*.vercel.app ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.DemoStepInterval != 300*time.Millisecond {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://*.vercel.app" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("CHAT_RESPONSE_DELAY_MS", "soon")
	t.Setenv("DEMO_CHAR_DELAY_MIN_MS", "90")
	t.Setenv("DEMO_CHAR_DELAY_MAX_MS", "40")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ChatResponseDelay != 1500*time.Millisecond {
		t.Fatalf("expected fallback delay, got %s", cfg.ChatResponseDelay)
	}
	if cfg.DemoCharDelayMax != 90*time.Millisecond {
		t.Fatalf("expected max clamped to min, got %s", cfg.DemoCharDelayMax)
	}
}
