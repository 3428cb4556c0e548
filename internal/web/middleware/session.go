package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/martijn/watchlist/internal/core/domain"
)

const (
	SessionName = "watchlist_session"

	sessionUserIDKey = "user_id"
)

// Sessions creates the signed-cookie session middleware. The cookie is
// signed with the configured secret; the session carries only the
// authenticated user id and any queued flash messages.
func Sessions(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	})
	return sessions.Sessions(SessionName, store)
}

// Login marks the session as authenticated for the given user.
func Login(c *gin.Context, user *domain.User) error {
	sess := sessions.Default(c)
	sess.Set(sessionUserIDKey, user.ID)
	return sess.Save()
}

// Logout clears the authenticated identity from the session.
func Logout(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(sessionUserIDKey)
	return sess.Save()
}

// SessionUserID returns the user id stored in the session, if any.
func SessionUserID(c *gin.Context) (int64, bool) {
	id, ok := sessions.Default(c).Get(sessionUserIDKey).(int64)
	return id, ok
}

// Flash queues a one-time message displayed on the next rendered page.
func Flash(c *gin.Context, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(message)
	_ = sess.Save()
}

// Flashes drains the queued flash messages.
func Flashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save()
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
