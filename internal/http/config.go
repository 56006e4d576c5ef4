package http

import (
	"github.com/mrlokans/chirp/internal/auth"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database Pinger

	// Authentication
	AuthController *auth.AuthController
	AuthMiddleware *auth.Middleware

	// CSRF protection is enabled when the secret is non-empty
	CSRFSecret    []byte
	SecureCookies bool

	// Browser origins allowed to call the API with credentials
	AllowedOrigins []string

	// Application info
	Version string
}
