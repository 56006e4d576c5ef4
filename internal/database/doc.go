// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations, health ping
//	└── users/           # Credential store: user lookups and inserts
//
// # Usage
//
//	db, err := database.NewDatabase("./chirp.db")
//	usersRepo := users.NewRepository(db.DB)
//	user, err := usersRepo.FindByUsername(ctx, "jane")
//
// Sub-packages add a compile-time interface check for the interface they
// serve, e.g. var _ auth.UserStore = (*Repository)(nil) in the auth tests.
package database
