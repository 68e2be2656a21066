// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"shirtshop_backend/internal/app/view"
	"shirtshop_backend/internal/feature/auth/domain/entity"
	"shirtshop_backend/internal/feature/auth/transport/http/dto"
	"shirtshop_backend/internal/feature/auth/usecase"
	"shirtshop_backend/internal/platform/session"
	"shirtshop_backend/internal/shared/safeurl"
)

// genericLoginError is shown on every login failure. It never discloses
// which factor failed.
const genericLoginError = "Incorrect username or password"

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the given username and password.
	Register(ctx context.Context, username, password string) error
	// Login authenticates a user and returns the user on success.
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

// RememberMinter mints remember-me tokens for the "remember" checkbox.
type RememberMinter interface {
	Mint(userID uint, username string) (string, error)
	TTL() time.Duration
}

// AuthHandler handles the login, registration and logout pages.
type AuthHandler struct {
	auth     AuthUsecase
	remember RememberMinter
}

// NewAuthHandler creates a new AuthHandler instance.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase, remember RememberMinter) *AuthHandler {
	return &AuthHandler{auth: auth, remember: remember}
}

// ShowLogin renders the login form, carrying the next parameter through.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", view.Data(c, "Log In", gin.H{
		"next": c.Query("next"),
	}))
}

// Login handles the login form submission.
// On success it establishes the authenticated-user session reference and
// redirects to the next target when that target is safe, the home page
// otherwise. Every failure shows the same generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		h.failLogin(c)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "username", form.Username, "remote_addr", c.ClientIP())
		h.failLogin(c)
		return
	}

	st := session.FromContext(c)
	st.SetUser(user.ID)

	if form.Remember != "" && h.remember != nil {
		tok, err := h.remember.Mint(user.ID, user.Username)
		if err != nil {
			slog.Error("failed to mint remember token", "error", err, "user_id", user.ID)
		} else {
			c.SetCookie(session.RememberCookieName, tok,
				int(h.remember.TTL().Seconds()), "/", "", false, true)
		}
	}

	slog.Info("user login successful", "username", form.Username, "remote_addr", c.ClientIP())

	target := "/"
	if next := c.Query("next"); next != "" && safeurl.IsSafe(next, hostURL(c.Request)) {
		target = next
	}
	c.Redirect(http.StatusFound, target)
}

// failLogin flashes the generic message and returns to the login form.
func (h *AuthHandler) failLogin(c *gin.Context) {
	if st := session.FromContext(c); st != nil {
		st.AddFlash(genericLoginError)
	}
	c.Redirect(http.StatusFound, loginURL(c.Query("next")))
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", view.Data(c, "Register", nil))
}

// Register handles the registration form submission.
// A duplicate username produces a user-facing message and leaves the
// stored users untouched.
func (h *AuthHandler) Register(c *gin.Context) {
	st := session.FromContext(c)

	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("registration validation failed", "error", err, "remote_addr", c.ClientIP())
		st.AddFlash("A username and a password of at least 8 characters are required")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if err := h.auth.Register(c.Request.Context(), form.Username, form.Password); err != nil {
		slog.Warn("registration failed", "error", err, "username", form.Username, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrUsernameTaken) {
			st.AddFlash("Username already taken")
		} else {
			st.AddFlash("Registration failed")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	slog.Info("user registered", "username", form.Username, "remote_addr", c.ClientIP())
	st.AddFlash("Account created, please log in")
	c.Redirect(http.StatusFound, "/login")
}

// Logout clears the authenticated-user session reference and drops the
// remember cookie. The admin flag is independent and stays as it is.
// Router wiring puts session.UserRequired in front of this handler.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.FromContext(c).ClearUser()
	c.SetCookie(session.RememberCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// loginURL rebuilds the login path, preserving a pending next target.
func loginURL(next string) string {
	if next == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// hostURL reconstructs the scheme and network location of the request, the
// base the safe-redirect check resolves targets against.
func hostURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
