// Package handler provides the HTTP handlers for the admin panel: the
// operator login and the product CRUD screens behind it.
package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shirtshop_backend/internal/app/view"
	"shirtshop_backend/internal/feature/admin/transport/http/dto"
	"shirtshop_backend/internal/feature/catalog/domain/entity"
	"shirtshop_backend/internal/feature/catalog/usecase"
	"shirtshop_backend/internal/platform/config"
	"shirtshop_backend/internal/platform/session"
)

// genericAdminLoginError is shown on every admin login failure. It never
// discloses which factor failed.
const genericAdminLoginError = "Incorrect username or password"

// AdminCatalog defines the catalog operations the admin panel needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AdminCatalog interface {
	// ListAll returns every product in the catalog.
	ListAll(ctx context.Context) ([]entity.Product, error)
	// Get returns a single product by ID.
	Get(ctx context.Context, id uint) (*entity.Product, error)
	// Create adds a product to the catalog.
	Create(ctx context.Context, product *entity.Product) error
	// Update persists changes to a product.
	Update(ctx context.Context, product *entity.Product) error
	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id uint) error
}

// AdminHandler handles the admin login and the product management pages.
type AdminHandler struct {
	catalog AdminCatalog
	creds   config.AdminConfig
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(catalog AdminCatalog, creds config.AdminConfig) *AdminHandler {
	return &AdminHandler{catalog: catalog, creds: creds}
}

// ShowLogin renders the admin login form.
func (h *AdminHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", view.Data(c, "Admin Log In", nil))
}

// Login handles the admin login form submission. Credentials are checked in
// constant time against the configured pair, and both factors are always
// compared. Success sets the admin flag on the session; the user reference
// is untouched.
func (h *AdminHandler) Login(c *gin.Context) {
	var form dto.AdminLoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("admin login validation failed", "error", err, "remote_addr", c.ClientIP())
		h.failLogin(c)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(form.Username), []byte(h.creds.Username))
	passOK := subtle.ConstantTimeCompare([]byte(form.Password), []byte(h.creds.Password))
	configured := h.creds.Username != "" && h.creds.Password != ""
	if !configured || userOK&passOK != 1 {
		slog.Warn("admin login failed", "username", form.Username, "remote_addr", c.ClientIP())
		h.failLogin(c)
		return
	}

	session.FromContext(c).SetAdmin(true)
	slog.Info("admin login successful", "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/admin")
}

// failLogin flashes the generic message and returns to the admin login form.
func (h *AdminHandler) failLogin(c *gin.Context) {
	if st := session.FromContext(c); st != nil {
		st.AddFlash(genericAdminLoginError)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// Logout clears the admin flag. Any authenticated user reference on the
// same session stays as it is.
func (h *AdminHandler) Logout(c *gin.Context) {
	session.FromContext(c).SetAdmin(false)
	c.Redirect(http.StatusFound, "/")
}

// Dashboard renders the product table.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	products, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to load products for dashboard", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", view.Data(c, "Admin", nil))
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", view.Data(c, "Admin", gin.H{
		"products": products,
	}))
}

// ShowNew renders an empty product form.
func (h *AdminHandler) ShowNew(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_product_form.html", view.Data(c, "New Product", gin.H{
		"action": "/admin/new",
	}))
}

// Create handles the new-product form submission.
func (h *AdminHandler) Create(c *gin.Context) {
	st := session.FromContext(c)

	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("product validation failed", "error", err)
		st.AddFlash("A product name of at most 64 characters and a non-negative price are required")
		c.Redirect(http.StatusFound, "/admin/new")
		return
	}

	product := productFromForm(&form)
	if err := h.catalog.Create(c.Request.Context(), product); err != nil {
		slog.Warn("failed to create product", "error", err, "name", form.Name)
		if errors.Is(err, usecase.ErrProductNameTaken) {
			st.AddFlash("A product with that name already exists")
		} else {
			st.AddFlash("Could not save product")
		}
		c.Redirect(http.StatusFound, "/admin/new")
		return
	}

	slog.Info("product created", "id", product.ID, "name", product.Name)
	st.AddFlash("Product created")
	c.Redirect(http.StatusFound, "/admin")
}

// ShowEdit renders the product form pre-filled with an existing product.
func (h *AdminHandler) ShowEdit(c *gin.Context) {
	product, ok := h.lookup(c)
	if !ok {
		return
	}

	names := make([]string, 0, len(product.Sizes))
	for _, s := range product.Sizes {
		names = append(names, s.Name)
	}

	c.HTML(http.StatusOK, "admin_product_form.html", view.Data(c, "Edit Product", gin.H{
		"action":  "/admin/edit/" + strconv.FormatUint(uint64(product.ID), 10),
		"product": product,
		"sizes":   strings.Join(names, ", "),
	}))
}

// Update handles the edit-product form submission.
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", view.Data(c, "Admin", nil))
		return
	}

	st := session.FromContext(c)

	var form dto.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("product validation failed", "error", err, "id", id)
		st.AddFlash("A product name of at most 64 characters and a non-negative price are required")
		c.Redirect(http.StatusFound, "/admin/edit/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	product := productFromForm(&form)
	product.ID = id
	if err := h.catalog.Update(c.Request.Context(), product); err != nil {
		slog.Warn("failed to update product", "error", err, "id", id)
		if errors.Is(err, usecase.ErrProductNameTaken) {
			st.AddFlash("A product with that name already exists")
		} else {
			st.AddFlash("Could not save product")
		}
		c.Redirect(http.StatusFound, "/admin/edit/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	slog.Info("product updated", "id", id, "name", product.Name)
	st.AddFlash("Product updated")
	c.Redirect(http.StatusFound, "/admin")
}

// Delete removes a product and returns to the dashboard.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", view.Data(c, "Admin", nil))
		return
	}

	st := session.FromContext(c)

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		slog.Warn("failed to delete product", "error", err, "id", id)
		if errors.Is(err, usecase.ErrProductNotFound) {
			st.AddFlash("Product not found")
		} else {
			st.AddFlash("Could not delete product")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	slog.Info("product deleted", "id", id)
	st.AddFlash("Product deleted")
	c.Redirect(http.StatusFound, "/admin")
}

// lookup fetches the product addressed by the :id parameter, rendering the
// error pages itself when that fails.
func (h *AdminHandler) lookup(c *gin.Context) (*entity.Product, bool) {
	id, err := parseID(c)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", view.Data(c, "Admin", nil))
		return nil, false
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", view.Data(c, "Admin", nil))
			return nil, false
		}
		slog.Error("failed to load product", "error", err, "id", id)
		c.HTML(http.StatusInternalServerError, "error.html", view.Data(c, "Admin", nil))
		return nil, false
	}
	return product, true
}

// parseID reads the :id route parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// productFromForm maps the form fields onto a catalog entity, splitting the
// comma-separated size names.
func productFromForm(form *dto.ProductForm) *entity.Product {
	var sizes []entity.Size
	for _, name := range strings.Split(form.Sizes, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sizes = append(sizes, entity.Size{Name: name})
	}

	return &entity.Product{
		Name:        form.Name,
		Price:       form.Price,
		Paypal:      form.Paypal,
		Description: form.Description,
		CoverImage:  form.CoverImage,
		Textual:     form.Textual,
		Sizes:       sizes,
	}
}
