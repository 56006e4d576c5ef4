// Package auth implements signup, login, logout and current-user lookup
// with stateless JWT session cookies.
//
// # Components
//
//   - BcryptHasher: one-way password digests (golang.org/x/crypto/bcrypt)
//   - TokenIssuer: signs HS256 tokens and sets the "jwt" cookie
//   - Service: the credential flow on top of a UserStore
//   - AuthController: gin handlers shaping Service results into JSON
//   - Middleware: ProtectRoute resolves the user ID from the cookie
//
// # Configuration
//
//	JWT_SECRET=<random string>   # Generated in development if empty
//	AUTH_TOKEN_TTL=360h          # Token and cookie lifetime (15 days)
//	AUTH_BCRYPT_COST=10          # bcrypt cost factor
//	APP_ENV=production           # Anything but "development" sets Secure cookies
//
// # Usage
//
//	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
//	tokens := auth.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, cfg.Auth.SecureCookies)
//	service := auth.NewService(users.NewRepository(db.DB), hasher)
//	controller := auth.NewAuthController(service, tokens)
//	controller.RegisterRoutes(router.Group("/api/auth"), auth.NewMiddleware(tokens).ProtectRoute())
//
// Client-facing failures are *Error values carrying an ErrorKind; everything
// else is reported as a 500 and logged.
package auth
