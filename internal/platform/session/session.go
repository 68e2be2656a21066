// Package session implements cookie-addressed server-side sessions and the
// access gates built on top of them.
//
// A session record lives in the store keyed by an opaque token carried in an
// HttpOnly cookie. It holds two independent identity flags: the reference to
// an authenticated user and the admin flag. Neither implies the other.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "shirtshop_session"

	// RememberCookieName is the cookie carrying the remember-me token.
	RememberCookieName = "shirtshop_remember"

	// contextKey is where the middleware stores the request state.
	contextKey = "session"
)

// ErrSessionNotFound is returned when a session cannot be found by ID.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side session record.
type Session struct {
	ID        string    `json:"id"`      // session token (64-character hex string)
	UserID    uint      `json:"user_id"` // authenticated user reference, 0 when anonymous
	Admin     bool      `json:"admin"`   // admin flag, independent of UserID
	Flashes   []string  `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store abstracts the persistence layer for session records.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (RedisStore).
type Store interface {
	// Save persists the session until its expiration time.
	Save(ctx context.Context, session *Session) error

	// FindByID retrieves a session by its token.
	FindByID(ctx context.Context, id string) (*Session, error)

	// Delete removes a session record.
	Delete(ctx context.Context, id string) error
}

// State wraps the session for one request and tracks whether handlers
// mutated it, so the middleware only writes back when needed.
type State struct {
	sess  *Session
	dirty bool
}

// UserID returns the authenticated user reference, 0 when anonymous.
func (st *State) UserID() uint {
	return st.sess.UserID
}

// LoggedIn reports whether a user is authenticated on this session.
func (st *State) LoggedIn() bool {
	return st.sess.UserID != 0
}

// IsAdmin reports whether the admin flag is set on this session.
func (st *State) IsAdmin() bool {
	return st.sess.Admin
}

// SetUser establishes the authenticated user reference.
func (st *State) SetUser(id uint) {
	st.sess.UserID = id
	st.dirty = true
}

// ClearUser removes the authenticated user reference. The admin flag is
// left untouched.
func (st *State) ClearUser() {
	st.sess.UserID = 0
	st.dirty = true
}

// SetAdmin sets or clears the admin flag. The user reference is left
// untouched.
func (st *State) SetAdmin(v bool) {
	st.sess.Admin = v
	st.dirty = true
}

// AddFlash queues a one-time message for the next rendered page.
func (st *State) AddFlash(msg string) {
	st.sess.Flashes = append(st.sess.Flashes, msg)
	st.dirty = true
}

// TakeFlashes drains and returns the queued flash messages.
func (st *State) TakeFlashes() []string {
	if len(st.sess.Flashes) == 0 {
		return nil
	}
	flashes := st.sess.Flashes
	st.sess.Flashes = nil
	st.dirty = true
	return flashes
}

// FromContext returns the session state attached by the middleware, or nil
// when the middleware did not run.
func FromContext(c *gin.Context) *State {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	st, ok := v.(*State)
	if !ok {
		return nil
	}
	return st
}

// newSessionID generates a 64-character hex session token.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
