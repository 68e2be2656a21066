// Package handler provides the HTTP handlers for the contact feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shirtshop_backend/internal/app/view"
	"shirtshop_backend/internal/feature/contact/transport/http/dto"
	"shirtshop_backend/internal/platform/session"
)

// Mailer sends a single HTML email.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (platform/externalapi/sendgrid).
type Mailer interface {
	Send(ctx context.Context, to, from, subject, htmlBody string) error
}

// ContactHandler renders the contact page and delivers submissions.
type ContactHandler struct {
	mailer Mailer
	to     string // shop inbox every submission goes to
	from   string // fixed sender address
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(mailer Mailer, to, from string) *ContactHandler {
	return &ContactHandler{mailer: mailer, to: to, from: from}
}

// Show renders the contact form.
func (h *ContactHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", view.Data(c, "Shirts 4 Mike", nil))
}

// Send delivers the contact form to the shop inbox. Failures surface as a
// generic flash; the submission is not retried.
func (h *ContactHandler) Send(c *gin.Context) {
	st := session.FromContext(c)

	var form dto.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("contact validation failed", "error", err, "remote_addr", c.ClientIP())
		st.AddFlash("Please fill in your name, email and message")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	subject := form.Name
	body := form.Message
	if err := h.mailer.Send(c.Request.Context(), h.to, h.from, subject, body); err != nil {
		slog.Error("failed to send contact email", "error", err, "remote_addr", c.ClientIP())
		st.AddFlash("Could not send your message, please try again later")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	slog.Info("contact email sent", "from", form.Email, "remote_addr", c.ClientIP())
	st.AddFlash("Email sent.")
	c.Redirect(http.StatusFound, "/contact")
}
