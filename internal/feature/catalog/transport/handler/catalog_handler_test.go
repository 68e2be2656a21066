package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shirtshop_backend/internal/feature/catalog/domain/entity"
	"shirtshop_backend/internal/feature/catalog/usecase"
)

// mockCatalogUsecase is a mock implementation of the CatalogUsecase interface.
type mockCatalogUsecase struct {
	ListAllFunc  func(ctx context.Context) ([]entity.Product, error)
	FeaturedFunc func(ctx context.Context, n int) ([]entity.Product, error)
	GetFunc      func(ctx context.Context, id uint) (*entity.Product, error)
}

func (m *mockCatalogUsecase) ListAll(ctx context.Context) ([]entity.Product, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) Featured(ctx context.Context, n int) ([]entity.Product, error) {
	if m.FeaturedFunc != nil {
		return m.FeaturedFunc(ctx, n)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrProductNotFound
}

// testTemplates is a minimal template set standing in for templates/.
const testTemplates = `
{{define "index.html"}}index:{{range .products}}[{{.Name}}]{{end}}{{range .flashes}}{{flash .}}{{end}}{{end}}
{{define "shirts.html"}}shirts:{{range .products}}[{{.Name}}]{{end}}{{end}}
{{define "shirt.html"}}shirt:{{.product.Name}} ${{.product.Price}}{{end}}
{{define "receipt.html"}}receipt{{end}}
{{define "not_found.html"}}not found{{end}}
{{define "error.html"}}error{{end}}
`

// newCatalogRouter wires the handler into a router rendering stripped-down
// templates.
func newCatalogRouter(t *testing.T, uc CatalogUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(uc)

	r := gin.New()
	// html/template normalizes a literal "<" directly before an action to
	// "&lt;", so the flash delimiters are emitted via a func instead.
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(template.FuncMap{
		"flash": func(s string) template.HTML {
			return template.HTML("<" + template.HTMLEscapeString(s) + ">")
		},
	}).Parse(testTemplates)))
	r.GET("/", h.Index)
	r.GET("/shirts", h.List)
	r.GET("/shirt/:id", h.Detail)
	r.GET("/receipt", h.Receipt)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCatalogHandler_Index(t *testing.T) {
	var gotN int
	r := newCatalogRouter(t, &mockCatalogUsecase{
		FeaturedFunc: func(_ context.Context, n int) ([]entity.Product, error) {
			gotN = n
			return []entity.Product{{Name: "Logo Shirt, Red"}, {Name: "Mike the Frog Shirt, Blue"}}, nil
		},
	})

	w := get(r, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, gotN, "home page asks for four featured shirts")
	assert.Contains(t, w.Body.String(), "[Logo Shirt, Red]")
	assert.Contains(t, w.Body.String(), "[Mike the Frog Shirt, Blue]")
	assert.Contains(t, w.Body.String(), "<This site is a demo do not buy anything>")
}

func TestCatalogHandler_Index_Error(t *testing.T) {
	r := newCatalogRouter(t, &mockCatalogUsecase{
		FeaturedFunc: func(_ context.Context, n int) ([]entity.Product, error) {
			return nil, errors.New("connection refused")
		},
	})

	w := get(r, "/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCatalogHandler_List(t *testing.T) {
	r := newCatalogRouter(t, &mockCatalogUsecase{
		ListAllFunc: func(_ context.Context) ([]entity.Product, error) {
			return []entity.Product{{Name: "Logo Shirt, Red"}, {Name: "Logo Shirt, Green"}}, nil
		},
	})

	w := get(r, "/shirts")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "[Logo Shirt, Red][Logo Shirt, Green]")
}

func TestCatalogHandler_Detail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var gotID uint
		r := newCatalogRouter(t, &mockCatalogUsecase{
			GetFunc: func(_ context.Context, id uint) (*entity.Product, error) {
				gotID = id
				return &entity.Product{ID: id, Name: "Logo Shirt, Red", Price: 18}, nil
			},
		})

		w := get(r, "/shirt/101")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(101), gotID)
		assert.Contains(t, w.Body.String(), "Logo Shirt, Red $18")
	})

	t.Run("unknown id renders not found", func(t *testing.T) {
		r := newCatalogRouter(t, &mockCatalogUsecase{})

		w := get(r, "/shirt/999")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not found")
	})

	t.Run("non-numeric id renders not found", func(t *testing.T) {
		called := false
		r := newCatalogRouter(t, &mockCatalogUsecase{
			GetFunc: func(_ context.Context, id uint) (*entity.Product, error) {
				called = true
				return nil, usecase.ErrProductNotFound
			},
		})

		w := get(r, "/shirt/abc")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, called, "lookup must not run for a malformed id")
	})
}

func TestCatalogHandler_Receipt(t *testing.T) {
	r := newCatalogRouter(t, &mockCatalogUsecase{})

	w := get(r, "/receipt")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "receipt")
}
