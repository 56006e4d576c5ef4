package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// Values reported per dependency in HealthResponse.Checks.
const (
	checkOK            = "ok"
	checkUnavailable   = "unavailable"
	checkNotConfigured = "not configured"
)

// Pinger is implemented by *database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the /health payload. Checks never carry error detail;
// failures are logged server-side.
type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      Pinger
	version string
}

func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

// Status reports 200 when every configured dependency answers and 503 otherwise.
func (h *HealthController) Status(c *gin.Context) {
	checks := map[string]string{
		"database": h.checkDatabase(c.Request.Context()),
	}

	status, statusCode := "healthy", http.StatusOK
	for _, result := range checks {
		if result == checkUnavailable {
			status, statusCode = "unhealthy", http.StatusServiceUnavailable
		}
	}

	c.IndentedJSON(statusCode, HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	})
}

func (h *HealthController) checkDatabase(ctx context.Context) string {
	if h.db == nil {
		return checkNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Printf("Health check: database ping failed: %v", err)
		return checkUnavailable
	}
	return checkOK
}
