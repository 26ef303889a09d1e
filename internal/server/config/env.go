package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays values from environment variables, first loading an
// optional .env file from the working directory. Unset variables leave the
// current values untouched.
//
// Recognized variables: ADDRESS, DATABASE_DSN, JWT_SECRET, TOKEN_VALIDITY
// (a Go duration such as "168h"), SECURE_COOKIES, APP_ENV ("production"
// enables hardening), S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION,
// S3_BASE_ENDPOINT.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		config.SecureCookies = v == "true" || v == "1"
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		config.Production = v == "production"
	}
	if v := os.Getenv("S3_ROOT_USER"); v != "" {
		config.S3RootUser = v
	}
	if v := os.Getenv("S3_ROOT_PASSWORD"); v != "" {
		config.S3RootPassword = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		config.S3Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		config.S3Region = v
	}
	if v := os.Getenv("S3_BASE_ENDPOINT"); v != "" {
		config.S3BaseEndpoint = v
	}
}
