package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	OAuth2Google OAuth2GoogleConfig
	FaceMatch    FaceMatchConfig
	Xendit       XenditConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendURL    string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// FaceMatchConfig holds settings for the external face-similarity provider.
// MinConfidence is the score below which a result is reported as no match.
type FaceMatchConfig struct {
	Endpoint      string
	APIKey        string
	Model         string
	MinConfidence float64
	TimeoutSec    int
}

type XenditConfig struct {
	APIKey             string
	Environment        string
	SuccessRedirectURL string
	FailureRedirectURL string
}

func Load() (*Config, error) {
	// .env is optional; deployments may set env vars directly
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
	config.App.AllowedOrigins = getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{config.App.FrontendURL}
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "labourpro"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("GOOGLE_SCOPES"),
	}

	minConfidence, err := strconv.ParseFloat(getEnv("FACEMATCH_MIN_CONFIDENCE", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FACEMATCH_MIN_CONFIDENCE: %w", err)
	}
	faceTimeout, err := strconv.Atoi(getEnv("FACEMATCH_TIMEOUT_SEC", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACEMATCH_TIMEOUT_SEC: %w", err)
	}

	config.FaceMatch = FaceMatchConfig{
		Endpoint:      getEnv("FACEMATCH_ENDPOINT", ""),
		APIKey:        getEnv("FACEMATCH_API_KEY", ""),
		Model:         getEnv("FACEMATCH_MODEL", "face-similarity-v1"),
		MinConfidence: minConfidence,
		TimeoutSec:    faceTimeout,
	}

	config.Xendit = XenditConfig{
		APIKey:             getEnv("XENDIT_API_KEY", ""),
		Environment:        getEnv("XENDIT_ENVIRONMENT", "sandbox"),
		SuccessRedirectURL: getEnv("XENDIT_SUCCESS_REDIRECT_URL", ""),
		FailureRedirectURL: getEnv("XENDIT_FAILURE_REDIRECT_URL", ""),
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
