// Package handler provides the storefront page handlers for the catalog
// feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shirtshop_backend/internal/app/view"
	"shirtshop_backend/internal/feature/catalog/domain/entity"
	"shirtshop_backend/internal/feature/catalog/usecase"
)

// demoBanner is shown on every catalog page.
const demoBanner = "This site is a demo do not buy anything"

// featuredCount is how many shirts the home page shows.
const featuredCount = 4

// CatalogUsecase defines the catalog operations the storefront needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CatalogUsecase interface {
	// ListAll returns every product in the catalog.
	ListAll(ctx context.Context) ([]entity.Product, error)
	// Featured returns the first n products for the home page.
	Featured(ctx context.Context, n int) ([]entity.Product, error)
	// Get returns a single product by ID.
	Get(ctx context.Context, id uint) (*entity.Product, error)
}

// CatalogHandler renders the public storefront pages.
type CatalogHandler struct {
	catalog CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Index renders the home page with the first four shirts.
func (h *CatalogHandler) Index(c *gin.Context) {
	products, err := h.catalog.Featured(c.Request.Context(), featuredCount)
	if err != nil {
		slog.Error("failed to load featured products", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", view.Data(c, "Shirts 4 Mike", nil))
		return
	}

	c.HTML(http.StatusOK, "index.html", withDemoBanner(view.Data(c, "Shirts 4 Mike", gin.H{
		"products": products,
	})))
}

// List renders the full shirts listing page.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to load products", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", view.Data(c, "Shirts 4 Mike", nil))
		return
	}

	c.HTML(http.StatusOK, "shirts.html", withDemoBanner(view.Data(c, "Shirts 4 Mike", gin.H{
		"products": products,
	})))
}

// Detail renders an individual shirt page.
func (h *CatalogHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", view.Data(c, "Shirts 4 Mike", nil))
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", view.Data(c, "Shirts 4 Mike", nil))
			return
		}
		slog.Error("failed to load product", "error", err, "id", id)
		c.HTML(http.StatusInternalServerError, "error.html", view.Data(c, "Shirts 4 Mike", nil))
		return
	}

	c.HTML(http.StatusOK, "shirt.html", withDemoBanner(view.Data(c, "Shirts 4 Mike", gin.H{
		"product": product,
	})))
}

// Receipt renders the post-purchase receipt page the checkout widget
// returns to.
func (h *CatalogHandler) Receipt(c *gin.Context) {
	c.HTML(http.StatusOK, "receipt.html", view.Data(c, "Shirts 4 Mike", nil))
}

// withDemoBanner appends the demo notice to the page's flash messages.
func withDemoBanner(data gin.H) gin.H {
	flashes, _ := data["flashes"].([]string)
	data["flashes"] = append(flashes, demoBanner)
	return data
}
