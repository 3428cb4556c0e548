package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web/form"
	"github.com/martijn/watchlist/internal/web/middleware"
)

type SettingsHandler struct {
	userService *service.UserService
}

func NewSettingsHandler(userService *service.UserService) *SettingsHandler {
	return &SettingsHandler{
		userService: userService,
	}
}

// Show handles GET /settings
func (h *SettingsHandler) Show(c *gin.Context) {
	render(c, http.StatusOK, "settings.html", gin.H{})
}

// Update handles POST /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req form.SettingsForm
	_ = c.ShouldBind(&req)

	_, err := h.userService.UpdateName(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			middleware.Flash(c, "Invalid input.")
			c.Redirect(http.StatusFound, "/settings")
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	middleware.Flash(c, "Settings updated.")
	c.Redirect(http.StatusFound, "/")
}
