package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/service"
)

const (
	UserContextKey = "user"
	AuthContextKey = "authenticated"
)

// CurrentUser resolves the site owner and the session's authenticated
// state once per request and stores both in the request context, so
// handlers and templates never reach into the session themselves.
func CurrentUser(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owner *domain.User
		if user, err := userService.Current(c.Request.Context()); err == nil {
			owner = user
			c.Set(UserContextKey, user)
		}

		authenticated := false
		if id, ok := SessionUserID(c); ok && owner != nil && owner.ID == id {
			authenticated = true
		}
		c.Set(AuthContextKey, authenticated)

		c.Next()
	}
}

// RequireLogin redirects unauthenticated requests to the login page
// instead of executing the protected handler.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the request carries a logged-in session.
func IsAuthenticated(c *gin.Context) bool {
	v, ok := c.Get(AuthContextKey)
	return ok && v.(bool)
}

// GetUser retrieves the site owner resolved by CurrentUser.
func GetUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
