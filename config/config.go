package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	// AI content generation backends. A missing key is a valid state:
	// the generation chain skips unconfigured backends and falls back.
	GeminiApiKey string
	GeminiModel  string
	OpenAIApiKey string
	OpenAIModel  string
	AiTimeoutSec int

	// YouTube Data API for playlist imports
	YouTubeApiKey     string
	YouTubeTimeoutSec int

	SendgridApiKey string
	EmailSender    string

	UploadFolder string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIApiKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AiTimeoutSec: getEnvInt("AI_TIMEOUT_SECONDS", 30),

		YouTubeApiKey:     getEnv("YOUTUBE_API_KEY", ""),
		YouTubeTimeoutSec: getEnvInt("YOUTUBE_TIMEOUT_SECONDS", 15),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@learnhub.local"),

		UploadFolder: getEnv("UPLOAD_FOLDER", "./public/uploads"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" && AppConfig.OpenAIApiKey == "" {
		log.Println("Warning: No AI API key configured. Content generation will use the offline fallback.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
