package config

import "time"

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./chirp.db"

	// DefaultTokenTTL is how long an issued session token stays valid
	DefaultTokenTTL = 15 * 24 * time.Hour

	// DefaultBcryptCost is the bcrypt work factor used for new password digests
	DefaultBcryptCost = 10
)

// Environments recognised by APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
