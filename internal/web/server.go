package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/web/handler"
	"github.com/martijn/watchlist/internal/web/middleware"
	"github.com/martijn/watchlist/pkg/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates the web server with all routes registered.
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	movieService *service.MovieService,
	userService *service.UserService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Sessions(cfg.SecretKey))
	router.Use(middleware.CurrentUser(userService))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	// Initialize handlers
	movieHandler := handler.NewMovieHandler(movieService)
	authHandler := handler.NewAuthHandler(authService)
	settingsHandler := handler.NewSettingsHandler(userService)

	// Public routes
	router.GET("/", movieHandler.Index)
	router.POST("/", movieHandler.Create)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)

	// Protected routes. The guard is attached explicitly per route so
	// that edit and delete are both covered.
	requireLogin := middleware.RequireLogin()

	edit := router.Group("/edit")
	edit.Use(requireLogin)
	{
		edit.GET("/:id", movieHandler.ShowEdit)
		edit.POST("/:id", movieHandler.Edit)
	}

	router.POST("/delete/:id", requireLogin, movieHandler.Delete)
	router.GET("/logout", requireLogin, authHandler.Logout)

	settings := router.Group("/settings")
	settings.Use(requireLogin)
	{
		settings.GET("", settingsHandler.Show)
		settings.POST("", settingsHandler.Update)
	}

	// Everything else renders the not-found page
	router.NoRoute(handler.NotFound)

	return &Server{
		router: router,
		config: cfg,
	}
}

// ServeHTTP makes the server usable as a plain http.Handler, which is
// what the tests drive directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
