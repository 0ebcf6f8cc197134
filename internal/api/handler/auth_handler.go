package handler

import (
	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/service"
	"hubdispatch/backend/internal/token"
	"hubdispatch/backend/pkg/response"
)

// AuthHandler backs login and session-validation (spec §4.8, §6).
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// loginRequest is the POST /auth/login body.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Pin      string `json:"pin" binding:"required"`
}

// Login authenticates a username/PIN pair and issues a bearer token.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWith(c, 400, "username and pin are required.")
		return
	}

	tok, user, access, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Pin)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{
		"token":    tok,
		"username": user.Username,
		"role":     user.Role,
		"access":   access,
	})
}

// Validate reports whether the caller's current token still grants the
// named app scope.
// GET /auth/validate?app=
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := mustGetClaims(c)
	if !ok {
		return
	}

	app := token.App(c.Query("app"))
	response.OK(c, gin.H{
		"username": claims.Username,
		"role":     claims.Role,
		"hasAccess": app == "" || token.HasAccess(claims.Role, app),
	})
}
