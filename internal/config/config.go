package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database    DatabaseConfig
	App         AppConfig
	JWT         JWTConfig
	Admin       AdminConfig
	Attendance  AttendanceConfig
	FaceService FaceServiceConfig
	Capture     CaptureConfig
	Storage     StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds admin token configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

// AdminConfig is the local console credential; the hash is a bcrypt
// digest of the admin password.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// AttendanceConfig carries the classification thresholds.
type AttendanceConfig struct {
	ArrivalThreshold   string // "HH:MM:SS"
	DepartureThreshold string // "HH:MM:SS"
	FullDayMinutes     int
}

type FaceServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CaptureConfig drives the kiosk auto-scan loop.
type CaptureConfig struct {
	ScanInterval       time.Duration
	CaptureCooldown    time.Duration
	RecognitionTimeout time.Duration
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// A missing .env is fine in production; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "liggey_sinaa"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET_KEY", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "12h"),
	}

	config.Admin = AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", "DB"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	fullDayMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_FULL_DAY_MINUTES", "540"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_FULL_DAY_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		ArrivalThreshold:   getEnv("ATTENDANCE_ARRIVAL_THRESHOLD", "08:00:00"),
		DepartureThreshold: getEnv("ATTENDANCE_DEPARTURE_THRESHOLD", "17:00:00"),
		FullDayMinutes:     fullDayMinutes,
	}

	faceTimeout, err := time.ParseDuration(getEnv("FACE_SERVICE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_SERVICE_TIMEOUT: %w", err)
	}

	config.FaceService = FaceServiceConfig{
		BaseURL: getEnv("FACE_SERVICE_URL", "http://localhost:5001"),
		Timeout: faceTimeout,
	}

	scanInterval, err := time.ParseDuration(getEnv("CAPTURE_SCAN_INTERVAL", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CAPTURE_SCAN_INTERVAL: %w", err)
	}
	cooldown, err := time.ParseDuration(getEnv("CAPTURE_COOLDOWN", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CAPTURE_COOLDOWN: %w", err)
	}
	recognitionTimeout, err := time.ParseDuration(getEnv("CAPTURE_RECOGNITION_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CAPTURE_RECOGNITION_TIMEOUT: %w", err)
	}

	config.Capture = CaptureConfig{
		ScanInterval:       scanInterval,
		CaptureCooldown:    cooldown,
		RecognitionTimeout: recognitionTimeout,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "data/images"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8000/data/images"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
