package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web/form"
	"github.com/martijn/watchlist/internal/web/middleware"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req form.LoginForm
	_ = c.ShouldBind(&req)

	if req.Username == "" || req.Password == "" {
		middleware.Flash(c, "Invalid input.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.Flash(c, "Invalid username or password")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if err := middleware.Login(c, user); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	middleware.Flash(c, "Login success.")
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.Logout(c); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	middleware.Flash(c, "Goodbye.")
	c.Redirect(http.StatusFound, "/")
}
