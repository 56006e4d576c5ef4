package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the session token.
const CookieName = "jwt"

// Claims binds a token to a user ID.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs session tokens and manages the session cookie.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewTokenIssuer creates an issuer signing with HS256. secure controls the
// Secure cookie attribute and should be false only in local development.
func NewTokenIssuer(secret []byte, ttl time.Duration, secure bool) *TokenIssuer {
	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// TTL returns the token lifetime.
func (ti *TokenIssuer) TTL() time.Duration {
	return ti.ttl
}

// IssueToken creates a signed token for the user.
func (ti *TokenIssuer) IssueToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("cannot issue token for empty user ID")
	}

	now := ti.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	})

	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a token and returns the user ID it was issued for.
func (ti *TokenIssuer) ParseToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(ti.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// IssueAndSetCookie issues a token for the user and attaches it to the response.
func (ti *TokenIssuer) IssueAndSetCookie(c *gin.Context, userID string) error {
	token, err := ti.IssueToken(userID)
	if err != nil {
		return err
	}
	ti.SetCookie(c, token)
	return nil
}

// SetCookie writes the session cookie: HTTP-only, same-site strict.
func (ti *TokenIssuer) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(ti.ttl.Seconds()), "/", "", ti.secure, true)
}

// ClearCookie overwrites the session cookie with an empty, already expired one.
func (ti *TokenIssuer) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	// A negative MaxAge is rendered as "Max-Age=0".
	c.SetCookie(CookieName, "", -1, "/", "", ti.secure, true)
}

// GenerateSecret creates a random 32-byte secret for token signing.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
