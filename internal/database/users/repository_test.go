package users

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/chirp/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_users_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func newUser(username, email string) *entities.User {
	return &entities.User{
		FullName:     "Test User",
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$digest",
	}
}

func TestRepository_Insert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := newUser("testuser", "test@example.com")
	err := repo.Insert(context.Background(), user)

	require.NoError(t, err)
	_, parseErr := uuid.Parse(user.ID)
	assert.NoError(t, parseErr, "ID should be a UUID")
	assert.Equal(t, []string{}, user.Followers)
	assert.Equal(t, []string{}, user.Following)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRepository_Insert_KeepsExplicitID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := newUser("testuser", "test@example.com")
	user.ID = "fixed-id"
	require.NoError(t, repo.Insert(context.Background(), user))

	found, err := repo.FindByID(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "testuser", found.Username)
}

func TestRepository_Insert_DuplicateUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Insert(context.Background(), newUser("dup", "one@example.com")))
	err := repo.Insert(context.Background(), newUser("dup", "two@example.com"))

	assert.Error(t, err)
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := newUser("testuser", "test@example.com")
	created.Following = []string{"someone"}
	require.NoError(t, repo.Insert(context.Background(), created))

	user, err := repo.FindByUsername(context.Background(), "testuser")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "$2a$04$digest", user.PasswordHash)
	assert.Equal(t, []string{}, user.Followers)
	assert.Equal(t, []string{"someone"}, user.Following)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := newUser("testuser", "test@example.com")
	require.NoError(t, repo.Insert(context.Background(), created))

	user, err := repo.FindByEmail(context.Background(), "test@example.com")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
