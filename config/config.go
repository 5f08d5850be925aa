package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Write modes for re-uploads within the same period.
const (
	WriteModeReplace = "replace"
	WriteModeAppend  = "append"
)

type Config struct {
	Port                    string
	JWTSecret               string
	JWTAccessExpiration     time.Duration
	JWTRefreshExpiration    time.Duration
	FrontendURL             string
	AppURL                  string
	MongoDBURI              string
	MongoDBDatabase         string
	SnapshotMaxAge          time.Duration
	UploadWriteMode         string
	UploadTimeout           time.Duration
	MaxUploadBytes          int64
	SuperadminEmail         string
	FirebaseCredentialsFile string
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	writeMode := getEnv("UPLOAD_WRITE_MODE", WriteModeReplace)
	if writeMode != WriteModeAppend {
		writeMode = WriteModeReplace
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		JWTSecret:               getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiration:     getDuration("JWT_ACCESS_EXPIRATION", 15*time.Minute),
		JWTRefreshExpiration:    getDuration("JWT_REFRESH_EXPIRATION", 168*time.Hour),
		FrontendURL:             getEnv("FRONTEND_URL", "http://localhost:3000"),
		AppURL:                  getEnv("APP_URL", "http://localhost:3000/"),
		MongoDBURI:              getEnv("MONGODB_URI", ""),
		MongoDBDatabase:         getEnv("MONGODB_DATABASE", "storedash"),
		SnapshotMaxAge:          getDuration("SNAPSHOT_MAX_AGE", 20*time.Minute),
		UploadWriteMode:         writeMode,
		UploadTimeout:           getDuration("UPLOAD_TIMEOUT", 5*time.Minute),
		MaxUploadBytes:          getInt64("MAX_UPLOAD_BYTES", 20<<20),
		SuperadminEmail:         getEnv("SUPERADMIN_EMAIL", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getInt64(key string, defaultValue int64) int64 {
	n, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
