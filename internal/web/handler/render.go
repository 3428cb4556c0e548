package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/web/middleware"
)

// render fills in the context keys every template expects (the owner,
// the session state and any pending flashes) and renders the template.
func render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		user, _ := middleware.GetUser(c)
		data["user"] = user
	}
	data["authenticated"] = middleware.IsAuthenticated(c)
	data["flashes"] = middleware.Flashes(c)
	c.HTML(code, name, data)
}

// NotFound renders the 404 page. Registered as the router's fallback
// and used by every get-or-404 lookup.
func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}
