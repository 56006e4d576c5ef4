package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/chirp/internal/auth"
	"github.com/mrlokans/chirp/internal/config"
	"github.com/mrlokans/chirp/internal/database"
	"github.com/mrlokans/chirp/internal/database/users"
	http_controllers "github.com/mrlokans/chirp/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 sends SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// jwtSecret returns the configured signing secret, generating a throwaway
// one in development. Sessions do not survive a restart in that case.
func jwtSecret(cfg *config.Config) ([]byte, error) {
	if cfg.Auth.JWTSecret != "" {
		return []byte(cfg.Auth.JWTSecret), nil
	}
	secret, err := auth.GenerateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	log.Printf("WARNING: JWT_SECRET is not set, generated a temporary secret. Sessions will not survive a restart.")
	return []byte(secret), nil
}

// csrfKey returns AUTH_CSRF_SECRET (hex or raw) or, if unset, a key derived
// from the token signing secret.
func csrfKey(cfg *config.Config, jwtSecret []byte) []byte {
	if cfg.Auth.CSRFSecret == "" {
		return auth.DeriveCSRFKey(jwtSecret)
	}
	key, err := hex.DecodeString(cfg.Auth.CSRFSecret)
	if err != nil {
		// Not hex, use as raw bytes
		key = []byte(cfg.Auth.CSRFSecret)
	}
	return key
}

// BuildRouter wires the store, hasher, token issuer and controllers into a router.
func BuildRouter(cfg *config.Config, db *database.Database, version string) (*gin.Engine, error) {
	secret, err := jwtSecret(cfg)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenIssuer(secret, cfg.Auth.TokenTTL, cfg.Auth.SecureCookies)
	service := auth.NewService(users.NewRepository(db.DB), auth.NewBcryptHasher(cfg.Auth.BcryptCost))

	var csrfSecret []byte
	if cfg.Auth.CSRFEnabled {
		csrfSecret = csrfKey(cfg, secret)
		log.Printf("CSRF protection enabled for /api/auth")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		AuthController: auth.NewAuthController(service, tokens),
		AuthMiddleware: auth.NewMiddleware(tokens),
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	}

	return http_controllers.NewRouter(routerCfg), nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Chirp v%s (%s)", version, cfg.Global.Env)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	router, err := BuildRouter(cfg, db, version)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
