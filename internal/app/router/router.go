// Package router wires every handler into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	adminhandler "shirtshop_backend/internal/feature/admin/transport/handler"
	authhandler "shirtshop_backend/internal/feature/auth/transport/handler"
	cataloghandler "shirtshop_backend/internal/feature/catalog/transport/handler"
	contacthandler "shirtshop_backend/internal/feature/contact/transport/handler"
	platformhandler "shirtshop_backend/internal/platform/http/handler"
	"shirtshop_backend/internal/platform/session"
)

// NewRouter builds the gin engine with the session middleware, the template
// set and every route of the storefront and the admin panel.
func NewRouter(sessionMW gin.HandlerFunc, catalog *cataloghandler.CatalogHandler,
	contact *contacthandler.ContactHandler, auth *authhandler.AuthHandler,
	admin *adminhandler.AdminHandler) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// No session needed
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	r.Use(sessionMW)

	// Storefront
	r.GET("/", catalog.Index)
	r.GET("/shirts", catalog.List)
	r.GET("/shirt/:id", catalog.Detail)
	r.GET("/receipt", catalog.Receipt)

	// Contact form
	r.GET("/contact", contact.Show)
	r.POST("/send", contact.Send)

	// User accounts
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/logout", session.UserRequired(), auth.Logout)

	// Admin login sits outside the gate
	r.GET("/admin/login", admin.ShowLogin)
	r.POST("/admin/login", admin.Login)
	r.GET("/admin/logout", admin.Logout)

	// Product management requires the admin flag
	g := r.Group("/admin")
	g.Use(session.AdminRequired())
	{
		g.GET("", admin.Dashboard)
		g.GET("/new", admin.ShowNew)
		g.POST("/new", admin.Create)
		g.GET("/edit/:id", admin.ShowEdit)
		g.POST("/edit/:id", admin.Update)
		g.POST("/delete/:id", admin.Delete)
	}

	return r
}
