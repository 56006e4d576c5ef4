package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/chirp/internal/auth"
	"github.com/mrlokans/chirp/internal/database"
	"github.com/mrlokans/chirp/internal/database/users"
	"github.com/mrlokans/chirp/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// UserStore implementations
var _ auth.UserStore = (*users.Repository)(nil)

// Pinger implementations used by the health check
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Credentials
// =============================================================================

// PasswordHasher implementations
var _ auth.PasswordHasher = (*auth.BcryptHasher)(nil)
