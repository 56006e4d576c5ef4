// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - UserStore: user lookup by username, email and id, plus insert
//     (internal/auth/service.go), implemented by internal/database/users
//   - Pinger: database liveness for the health endpoint (internal/http/health.go)
//
// ## Credential Interfaces
//
//   - PasswordHasher: hash and verify passwords (internal/auth/password.go)
//
// Session tokens are not behind an interface; *auth.TokenIssuer is shared by
// the controller that issues cookies and the middleware that verifies them.
//
// # Adding a New User Store
//
// To back users with another database:
//
//  1. Implement UserStore in a new sub-package of internal/database/:
//
//     type Repository struct { db *gorm.DB }
//
//     func (r *Repository) FindByUsername(ctx context.Context, username string) (*entities.User, error)
//     func (r *Repository) FindByEmail(ctx context.Context, email string) (*entities.User, error)
//     func (r *Repository) FindByID(ctx context.Context, id string) (*entities.User, error)
//     func (r *Repository) Insert(ctx context.Context, user *entities.User) error
//
//     Lookups of missing users must return users.ErrUserNotFound.
//
//  2. Pass it to auth.NewService in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the checks in this codebase.
package interfaces
