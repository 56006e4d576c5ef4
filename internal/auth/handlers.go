package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service *Service
	tokens  *TokenIssuer
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, tokens *TokenIssuer) *AuthController {
	return &AuthController{
		service: service,
		tokens:  tokens,
	}
}

// RegisterRoutes registers authentication routes on the group.
// protect guards the routes that need a signed-in user.
func (ac *AuthController) RegisterRoutes(group *gin.RouterGroup, protect gin.HandlerFunc) {
	group.POST("/signup", ac.Signup)
	group.POST("/login", ac.Login)
	group.POST("/logout", ac.Logout)
	group.GET("/me", protect, ac.GetMe)
}

type signupRequest struct {
	FullName string `json:"fullname" form:"fullname"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Signup creates an account and signs the new user in.
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		// Unparseable bodies are validated as empty input.
		req = signupRequest{}
	}

	user, err := ac.service.Signup(c.Request.Context(), SignupInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, "signup", err)
		return
	}

	if err := ac.tokens.IssueAndSetCookie(c, user.ID); err != nil {
		respondError(c, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, user.Profile())
}

// Login verifies credentials and sets the session cookie.
// Responds 201 like signup so existing clients keep working.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		req = loginRequest{}
	}

	user, err := ac.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	if err := ac.tokens.IssueAndSetCookie(c, user.ID); err != nil {
		respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusCreated, user.Profile())
}

// Logout clears the session cookie. It succeeds whether or not a session exists.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.tokens.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe returns the signed-in user. A token for a user that no longer
// exists yields 200 with a null body.
func (ac *AuthController) GetMe(c *gin.Context) {
	user, err := ac.service.CurrentUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondError(c, "getMe", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

// respondError writes client-facing errors verbatim and hides everything else
// behind a generic 500.
func respondError(c *gin.Context, op string, err error) {
	if authErr, ok := AsError(err); ok {
		c.JSON(authErr.StatusCode(), gin.H{"error": authErr.Message})
		return
	}
	log.Printf("Error in %s controller: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
