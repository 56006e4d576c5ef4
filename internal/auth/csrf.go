package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// CSRFTokenHeader is the header carrying the CSRF token in both directions.
const CSRFTokenHeader = "X-CSRF-Token"

const contextKeyCSRFToken = "csrf_token"

const csrfKeyLabel = "chirp/csrf-auth-key"

// CSRFMiddleware creates a Gin middleware for CSRF protection. Safe methods
// pass through and receive a token; unsafe methods must echo it back in
// the X-CSRF-Token header. allowedOrigins are the browser origins the API
// serves (e.g. "http://localhost:3000"); requests from them pass the
// Origin/Referer check. When secure is false requests are treated as plain
// HTTP, so no HTTPS Referer is demanded.
func CSRFMiddleware(secret []byte, secure bool, allowedOrigins []string) gin.HandlerFunc {
	csrfProtect := csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Path("/"),
		csrf.RequestHeader(CSRFTokenHeader),
		csrf.TrustedOrigins(originHosts(allowedOrigins)),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)

	return func(c *gin.Context) {
		passed := false
		handler := csrfProtect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Set(contextKeyCSRFToken, csrf.Token(r))
			c.Request = r
			c.Next()
		}))

		req := c.Request
		if !secure {
			req = csrf.PlaintextHTTPRequest(req)
		}

		handler.ServeHTTP(c.Writer, req)
		if !passed {
			// The error handler already wrote the response.
			c.Abort()
		}
	}
}

// originHosts turns origins into the host[:port] form gorilla/csrf compares
// against. Unparseable entries are skipped.
func originHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))
	for _, origin := range origins {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			continue
		}
		hosts = append(hosts, u.Host)
	}
	return hosts
}

// DeriveCSRFKey derives the 32-byte CSRF cookie key from the token signing
// secret, so the two never share a key.
func DeriveCSRFKey(secret []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(csrfKeyLabel))
	return mac.Sum(nil)
}

// csrfErrorHandler handles CSRF validation failures.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
}

// CSRFToken exposes the current token in the X-CSRF-Token response header.
func CSRFToken(c *gin.Context) {
	c.Header(CSRFTokenHeader, GetCSRFToken(c))
	c.Status(http.StatusNoContent)
}

// GetCSRFToken retrieves the CSRF token from the Gin context.
func GetCSRFToken(c *gin.Context) string {
	if token, exists := c.Get(contextKeyCSRFToken); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}
