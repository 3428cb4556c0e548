package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/infrastructure/sqlite"
	"github.com/martijn/watchlist/pkg/config"
)

// testEnv holds all test dependencies
type testEnv struct {
	db        *sqlite.DB
	server    *Server
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
	auth      *service.AuthService
}

// setupTestEnv creates a full server backed by an in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	movieRepo := sqlite.NewMovieRepository(db)

	authService := service.NewAuthService(userRepo)
	movieService := service.NewMovieService(movieRepo)
	userService := service.NewUserService(userRepo)

	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		DBPath:    ":memory:",
		Host:      "127.0.0.1",
		Port:      config.DefaultPort,
		SecretKey: "test-secret",
	}

	return &testEnv{
		db:        db,
		server:    NewServer(cfg, authService, movieService, userService),
		userRepo:  userRepo,
		movieRepo: movieRepo,
		auth:      authService,
	}
}

// seedOwner creates the single owner account with login credentials
func (env *testEnv) seedOwner(t *testing.T, name, username, password string) *domain.User {
	t.Helper()

	hash, err := env.auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := domain.NewUser(name, username, hash)
	if err := env.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed owner: %v", err)
	}
	return user
}

func (env *testEnv) seedMovie(t *testing.T, title, year string) *domain.Movie {
	t.Helper()

	movie := domain.NewMovie(title, year)
	if err := env.movieRepo.Create(context.Background(), movie); err != nil {
		t.Fatalf("failed to seed movie %q: %v", title, err)
	}
	return movie
}

// client drives the server like a browser, carrying cookies (and with
// them the session) across requests.
type client struct {
	env     *testEnv
	cookies map[string]*http.Cookie
}

func newClient(env *testEnv) *client {
	return &client{env: env, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	cl.env.server.ServeHTTP(w, req)

	// A handler may save the session more than once; the last cookie
	// per name is the one a browser would keep.
	for _, ck := range w.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return w
}

func (cl *client) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return cl.do(t, http.MethodGet, path, nil)
}

func (cl *client) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return cl.do(t, http.MethodPost, path, form)
}

// login authenticates the client and asserts it worked
func (cl *client) login(t *testing.T, username, password string) {
	t.Helper()

	w := cl.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	assertRedirect(t, w, "/")
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d\nBody: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

// assertFlash follows up with a GET and checks the flash shows up once
func (cl *client) assertFlash(t *testing.T, path, message string) {
	t.Helper()

	w := cl.get(t, path)
	if w.Code != http.StatusOK && w.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d fetching %s", w.Code, path)
	}
	if !strings.Contains(w.Body.String(), message) {
		t.Fatalf("expected page %s to contain flash %q\nBody: %s", path, message, w.Body.String())
	}

	// Flashes are one-time: a reload must not repeat the message.
	again := cl.get(t, path)
	if strings.Contains(again.Body.String(), message) {
		t.Fatalf("expected flash %q to be drained after display", message)
	}
}

func (env *testEnv) movieCount(t *testing.T) int {
	t.Helper()

	movies, err := env.movieRepo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list movies: %v", err)
	}
	return len(movies)
}
