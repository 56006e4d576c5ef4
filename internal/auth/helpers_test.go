package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/chirp/internal/database/users"
	"github.com/mrlokans/chirp/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var _ UserStore = (*users.Repository)(nil)

const testSecret = "test-secret-key-32-bytes-long!!"

func setupTestStore(t *testing.T) *users.Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return users.NewRepository(db)
}

func newTestService(t *testing.T) (*Service, *users.Repository) {
	t.Helper()
	store := setupTestStore(t)
	return NewService(store, NewBcryptHasher(4)), store
}

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer([]byte(testSecret), 15*24*time.Hour, false)
}

// setupTestRouter wires the auth routes the same way the HTTP package does.
func setupTestRouter(t *testing.T, store UserStore) (*gin.Engine, *TokenIssuer) {
	t.Helper()
	tokens := newTestIssuer()
	controller := NewAuthController(NewService(store, NewBcryptHasher(4)), tokens)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/auth"), NewMiddleware(tokens).ProtectRoute())
	return router, tokens
}

func doJSON(router http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

var errStoreDown = errors.New("database is locked")

// faultyStore fails every call.
type faultyStore struct{}

func (faultyStore) FindByUsername(context.Context, string) (*entities.User, error) {
	return nil, errStoreDown
}

func (faultyStore) FindByEmail(context.Context, string) (*entities.User, error) {
	return nil, errStoreDown
}

func (faultyStore) FindByID(context.Context, string) (*entities.User, error) {
	return nil, errStoreDown
}

func (faultyStore) Insert(context.Context, *entities.User) error {
	return errStoreDown
}

// faultyHasher fails to hash and verify.
type faultyHasher struct{}

func (faultyHasher) Hash(string) (string, error) {
	return "", errors.New("entropy source unavailable")
}

func (faultyHasher) Verify(string, string) (bool, error) {
	return false, errors.New("malformed digest")
}
