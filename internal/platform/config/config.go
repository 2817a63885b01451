package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTIssuer string

	// Access token config (short TTL, minutes).
	AccessTokenSecret         string
	AccessTokenExpiryDuration time.Duration
	AccessTokenCookieName     string

	// Refresh token config (long TTL, days). A distinct secret so a leaked
	// access-token secret cannot forge refresh tokens.
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string

	CORSAllowedOrigins []string

	// Asset storage (S3-compatible).
	S3Region          string
	S3Bucket          string
	S3BaseEndpoint    string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_ISSUER", "vidstream-backend")
	viper.SetDefault("ACCESS_TOKEN_SECRET", "")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_DURATION", "15m")
	viper.SetDefault("ACCESS_TOKEN_COOKIE_NAME", "accessToken")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "240h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "vidstream-assets")
	viper.SetDefault("S3_BASE_ENDPOINT", "")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be set in production")
		}
		log.Println("Warning: ACCESS_TOKEN_SECRET not set. Using default insecure key.")
		cfg.AccessTokenSecret = "insecure-access-secret-change-me"
	}

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("REFRESH_TOKEN_SECRET must be set in production")
		}
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure key.")
		cfg.RefreshTokenSecret = "insecure-refresh-secret-change-me"
	}

	cfg.AccessTokenExpiryDuration = parseDurationOr("ACCESS_TOKEN_EXPIRY_DURATION", 15*time.Minute)
	cfg.RefreshTokenExpiryDuration = parseDurationOr("REFRESH_TOKEN_EXPIRY_DURATION", 10*24*time.Hour)

	cfg.AccessTokenCookieName = viper.GetString("ACCESS_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")

	cfg.S3Region = viper.GetString("S3_REGION")
	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	cfg.S3BaseEndpoint = viper.GetString("S3_BASE_ENDPOINT")
	cfg.S3AccessKeyID = viper.GetString("S3_ACCESS_KEY_ID")
	cfg.S3SecretAccessKey = viper.GetString("S3_SECRET_ACCESS_KEY")
	cfg.S3PublicBaseURL = viper.GetString("S3_PUBLIC_BASE_URL")
	if cfg.S3PublicBaseURL == "" {
		cfg.S3PublicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
