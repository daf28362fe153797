package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values loaded from environment variables.
type Config struct {
	HTTPPort       string
	AllowedOrigins []string
	RandomSeed     int64 // 0 seeds from the clock

	ChatResponseDelay time.Duration
	CarouselInterval  time.Duration

	DemoStartDelay   time.Duration
	DemoCharDelayMin time.Duration
	DemoCharDelayMax time.Duration
	DemoPhaseDelay   time.Duration
	DemoStepInterval time.Duration
	CopyFeedback     time.Duration
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file (useful for development)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Could not load .env file. Using environment variables only.", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,https://*.vercel.app")),
		RandomSeed:        int64(getEnvInt("RANDOM_SEED", 0)),
		ChatResponseDelay: getEnvMillis("CHAT_RESPONSE_DELAY_MS", 1500),
		CarouselInterval:  getEnvMillis("CAROUSEL_INTERVAL_MS", 5000),
		DemoStartDelay:    getEnvMillis("DEMO_START_DELAY_MS", 500),
		DemoCharDelayMin:  getEnvMillis("DEMO_CHAR_DELAY_MIN_MS", 30),
		DemoCharDelayMax:  getEnvMillis("DEMO_CHAR_DELAY_MAX_MS", 80),
		DemoPhaseDelay:    getEnvMillis("DEMO_PHASE_DELAY_MS", 500),
		DemoStepInterval:  getEnvMillis("DEMO_STEP_INTERVAL_MS", 300),
		CopyFeedback:      getEnvMillis("COPY_FEEDBACK_MS", 2000),
	}

	if cfg.DemoCharDelayMax < cfg.DemoCharDelayMin {
		log.Printf("Warning: DEMO_CHAR_DELAY_MAX_MS (%s) is below the minimum (%s), using the minimum for both.", cfg.DemoCharDelayMax, cfg.DemoCharDelayMin)
		cfg.DemoCharDelayMax = cfg.DemoCharDelayMin
	}

	log.Printf("Loaded config: Port=%s, Origins=%v, ChatDelay=%s, CarouselInterval=%s", cfg.HTTPPort, cfg.AllowedOrigins, cfg.ChatResponseDelay, cfg.CarouselInterval)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Env variable %s not set, using default: %s", key, fallback)
	return fallback
}

// getEnvInt parses a non-negative integer variable, falling back on bad input.
func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		log.Printf("Warning: Invalid %s '%s', using default %d. Error: %v", key, raw, fallback, err)
		return fallback
	}
	return n
}

func getEnvMillis(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Millisecond
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
