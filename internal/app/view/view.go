// Package view assembles the data common to every rendered page.
package view

import (
	"time"

	"github.com/gin-gonic/gin"

	"shirtshop_backend/internal/platform/session"
)

// Data builds the template data for a page: title, current year, drained
// flash messages and the viewer's identity flags, merged with any
// page-specific values.
func Data(c *gin.Context, title string, extra gin.H) gin.H {
	data := gin.H{
		"page_title":   title,
		"current_year": time.Now().Year(),
	}

	if st := session.FromContext(c); st != nil {
		data["flashes"] = st.TakeFlashes()
		data["logged_in"] = st.LoggedIn()
		data["is_admin"] = st.IsAdmin()
	}

	for k, v := range extra {
		data[k] = v
	}
	return data
}
