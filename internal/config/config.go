package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		CORS
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		Env                      string // "development" disables secure cookies
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret     string
		TokenTTL      time.Duration
		BcryptCost    int
		SecureCookies bool // false in development so cookies work over plain HTTP
		CSRFEnabled   bool
		CSRFSecret    string // Derived from JWTSecret if empty
	}
	CORS struct {
		AllowedOrigins []string
	}
)

var (
	ErrJWTSecretRequired = errors.New("JWT_SECRET is required outside development")
	ErrInvalidBcryptCost = fmt.Errorf("AUTH_BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	ErrInvalidTokenTTL   = errors.New("AUTH_TOKEN_TTL must be positive")
)

// NewConfig reads configuration from the environment. Values from a .env file
// in the working directory are loaded first but never override variables
// that are already set.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("jwt_secret", "") // Generated in development if empty
	v.SetDefault("auth_token_ttl", DefaultTokenTTL.String())
	v.SetDefault("auth_bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("auth_csrf_enabled", false)
	v.SetDefault("auth_csrf_secret", "")

	v.SetDefault("cors_allowed_origins", "http://localhost:3000")

	env := strings.ToLower(v.GetString("APP_ENV"))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			Env:                      env,
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("JWT_SECRET"),
			TokenTTL:      v.GetDuration("AUTH_TOKEN_TTL"),
			BcryptCost:    v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies: env != EnvDevelopment,
			CSRFEnabled:   v.GetBool("AUTH_CSRF_ENABLED"),
			CSRFSecret:    v.GetString("AUTH_CSRF_SECRET"),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

// IsDevelopment reports whether the process runs in local development.
func (c *Config) IsDevelopment() bool {
	return c.Global.Env == EnvDevelopment
}

// Validate checks settings that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" && !c.IsDevelopment() {
		return ErrJWTSecretRequired
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidBcryptCost
	}
	if c.Auth.TokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
