package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RememberParser verifies a remember-me token and returns the user it
// identifies. Defined here because the middleware is the consumer; the
// provider validates the signature and confirms the user still exists.
type RememberParser interface {
	Parse(ctx context.Context, token string) (uint, error)
}

// Middleware attaches a session State to every request.
//
// It resolves the session from the session cookie, falling back to the
// remember-me cookie when the session is gone, and otherwise starts a fresh
// one. The session cookie is issued before handlers run so redirect
// responses carry it; the record itself is written back after the handler
// chain, and only when something changed.
func Middleware(store Store, remember RememberParser, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := resolveState(c, store, remember, ttl)
		c.Set(contextKey, st)

		c.Next()

		if !st.dirty || st.sess.ID == "" {
			return
		}
		if err := store.Save(c.Request.Context(), st.sess); err != nil {
			slog.Error("failed to save session", "error", err, "session_id", st.sess.ID)
		}
	}
}

// resolveState loads or creates the session for this request.
func resolveState(c *gin.Context, store Store, remember RememberParser, ttl time.Duration) *State {
	if id, err := c.Cookie(CookieName); err == nil && id != "" {
		sess, err := store.FindByID(c.Request.Context(), id)
		if err == nil && !sess.IsExpired() {
			return &State{sess: sess}
		}
		if err != nil && err != ErrSessionNotFound {
			slog.Warn("failed to load session", "error", err)
		}
	}

	st := freshState(c, ttl)

	// No live session: a valid remember-me token re-establishes the user.
	if remember != nil {
		if tok, err := c.Cookie(RememberCookieName); err == nil && tok != "" {
			if userID, err := remember.Parse(c.Request.Context(), tok); err == nil {
				st.SetUser(userID)
				slog.Info("session restored from remember token", "user_id", userID)
			}
		}
	}

	return st
}

// freshState starts a new anonymous session and issues its cookie.
func freshState(c *gin.Context, ttl time.Duration) *State {
	id, err := newSessionID()
	if err != nil {
		// Without an ID the session cannot be persisted; the request still
		// proceeds anonymously.
		slog.Error("failed to create session id", "error", err)
		return &State{sess: &Session{CreatedAt: time.Now(), ExpiresAt: time.Now().Add(ttl)}}
	}

	now := time.Now()
	sess := &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	c.SetCookie(CookieName, sess.ID, int(ttl.Seconds()), "/", "", false, true)
	return &State{sess: sess}
}

// AdminRequired gates a route group on the session admin flag. Requests
// without it are redirected to the home page and the wrapped handlers
// never run.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := FromContext(c)
		if st == nil || !st.IsAdmin() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserRequired gates a route on the authenticated-user reference. Requests
// without it are redirected to the login page.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := FromContext(c)
		if st == nil || !st.LoggedIn() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
