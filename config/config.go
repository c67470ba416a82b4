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

	// FrontendURL is the public base used inside generated QR validation
	// links. When empty the generator falls back to the request origin.
	FrontendURL string

	// DriveProxyURL is the endpoint that proxies signature images stored
	// in Google Drive, queried as ?id=<file id>.
	DriveProxyURL string

	LogoPath  string
	UploadDir string
	TmpDir    string

	EmailSender string
	Password    string // SMTP Password
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

		FrontendURL:   getEnv("FRONTEND_URL", ""),
		DriveProxyURL: getEnv("DRIVE_PROXY_URL", "http://localhost:8000/google/proxy-drive"),

		LogoPath:  getEnv("LOGO_PATH", "./public/logo.png"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		TmpDir:    getEnv("TMP_DIR", "./tmp"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.FrontendURL == "" {
		log.Println("Warning: FRONTEND_URL not set. Validation links will use the request origin.")
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
