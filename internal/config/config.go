package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type Config struct {
	DB_URL        string
	Port          string
	Environment   string
	APIBaseURL    string
	StorageDriver string
	UploadURLTTL  time.Duration
	SeedFile      string
	CorsConfig    cors.Options
	R2            R2Config
	Minio         MinioConfig
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}
	return Load()
}

// Load builds a Config from the current process environment.
func Load() Config {
	return Config{
		DB_URL:        getEnv("DB_URL", ""),
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "development"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		StorageDriver: getEnv("STORAGE_DRIVER", "r2"),
		UploadURLTTL:  time.Duration(getEnvInt("UPLOAD_URL_TTL", 900)) * time.Second,
		SeedFile:      getEnv("SEED_FILE", ""),
		CorsConfig:    CorsConfig(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
		},
		Minio: MinioConfig{
			Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:  getEnv("MINIO_SECRET_KEY", ""),
			BucketName: getEnv("MINIO_BUCKET_NAME", "attachments"),
			UseSSL:     getEnv("MINIO_USE_SSL", "false") == "true",
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func CorsConfig(origins string) cors.Options {
	return cors.Options{
		AllowedOrigins:   splitOrigins(origins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
