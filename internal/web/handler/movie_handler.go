package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/repository"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web/form"
	"github.com/martijn/watchlist/internal/web/middleware"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// Index handles GET /
func (h *MovieHandler) Index(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"movies": movies,
	})
}

// Create handles POST /
func (h *MovieHandler) Create(c *gin.Context) {
	var req form.MovieForm
	_ = c.ShouldBind(&req)

	_, err := h.movieService.Create(c.Request.Context(), req.Title, req.Year)
	switch {
	case err == nil:
		middleware.Flash(c, "Item created.")
	case errors.Is(err, service.ErrDuplicateTitle):
		middleware.Flash(c, "Item existed.")
	case errors.Is(err, service.ErrInvalidInput):
		middleware.Flash(c, "Invalid input.")
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ShowEdit handles GET /edit/:id
func (h *MovieHandler) ShowEdit(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	movie, err := h.movieService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	render(c, http.StatusOK, "edit.html", gin.H{
		"movie": movie,
	})
}

// Edit handles POST /edit/:id
func (h *MovieHandler) Edit(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	var req form.MovieForm
	_ = c.ShouldBind(&req)

	_, err := h.movieService.Update(c.Request.Context(), id, req.Title, req.Year)
	switch {
	case err == nil:
		middleware.Flash(c, "Item updated.")
	case errors.Is(err, service.ErrInvalidInput):
		middleware.Flash(c, "Invalid input.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", id))
		return
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c)
		return
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete handles POST /delete/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		return
	}

	err := h.movieService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	middleware.Flash(c, "Item deleted.")
	c.Redirect(http.StatusFound, "/")
}

// movieID parses the :id path parameter. A non-numeric or negative id
// can never match a row, so it renders the 404 page directly.
func movieID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		NotFound(c)
		return 0, false
	}
	return id, true
}
