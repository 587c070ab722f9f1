package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCooldown is the minimum gap between two accepted submissions,
// measured against the most recent stored report. The product rule has
// moved between 10 minutes and 24 hours over time, so it lives in config
// rather than in the workflow.
const DefaultCooldown = 24 * time.Hour

// Blob storage providers.
const (
	BlobProviderFirebase   = "firebase"
	BlobProviderCloudinary = "cloudinary"
)

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	FrontendURL string

	BlobProvider string

	FirebaseCredentialsFile string
	FirebaseStorageBucket   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	SubmitCooldown time.Duration

	RateLimit  int
	RateWindow time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "springwatch"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		BlobProvider: getEnv("BLOB_PROVIDER", BlobProviderFirebase),

		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "serviceAccount.json"),
		FirebaseStorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_UPLOAD_FOLDER", "springwatch"),

		SubmitCooldown: getDurationEnv("SUBMIT_COOLDOWN", DefaultCooldown),

		RateLimit:  getIntEnv("RATE_LIMIT", 30),
		RateWindow: getDurationEnv("RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s, using default", key)
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default", key)
	}
	return defaultValue
}
