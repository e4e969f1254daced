package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Record Store (Google Sheets)
	SpreadsheetID       string
	CredentialsFile     string
	MentorsSheetName    string
	SelectionsSheetName string
	// Frontend origin allowed by CORS
	FrontendURL string
	// SMTP Configuration for the match notification
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitSubmitThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Record Store: injected at startup, never embedded as literals
		SpreadsheetID:       getEnv("SPREADSHEET_ID", ""),
		CredentialsFile:     getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		MentorsSheetName:    getEnv("MENTORS_SHEET", "Tutores"),
		SelectionsSheetName: getEnv("SELECTIONS_SHEET", "Selecciones"),
		FrontendURL:         strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@mentorias.local"),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 5),
	}

	// Basic validation to avoid confusing failures later
	if cfg.SpreadsheetID == "" {
		log.Println("WARNING: SPREADSHEET_ID is missing. Application will fail to reach the record store.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
