package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ProductLookup runs the fallback search
type ProductLookup interface {
	Lookup(ctx context.Context, searchValue string) domain.SearchOutcome
}

// ProductCatalog manages user-submitted products
type ProductCatalog interface {
	AddProduct(ctx context.Context, request *domain.AddProductRequest) (*domain.StoredProduct, error)
	ListProducts(ctx context.Context) ([]domain.StoredProduct, error)
}

// RegistryStatus reports which registry credentials are configured
type RegistryStatus struct {
	HACCPKeySet  bool `json:"haccpKeySet"`
	FoodQRKeySet bool `json:"foodqrKeySet"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookup  ProductLookup
	catalog ProductCatalog
	status  RegistryStatus
	version string
}

// NewHandler creates a new HTTP handler; version is reported by the health check
func NewHandler(lookup ProductLookup, catalog ProductCatalog, status RegistryStatus, version string) *Handler {
	return &Handler{
		lookup:  lookup,
		catalog: catalog,
		status:  status,
		version: version,
	}
}

// searchResponse is the body of a successful lookup
type searchResponse struct {
	ProductName      string                 `json:"productName"`
	Source           string                 `json:"source"`
	SearchMethod     string                 `json:"searchMethod,omitempty"`
	RawMaterials     string                 `json:"rawMaterials"`
	FoundIngredients domain.DetectionResult `json:"foundIngredients"`
}

// productSummary is one entry of the product listing
type productSummary struct {
	ID          uint      `json:"id"`
	ProductName string    `json:"productName"`
	Barcode     string    `json:"barcode"`
	ImrptNo     string    `json:"imrptNo"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "allergenlens-backend",
		"version": h.version,
	})
}

// Status reports whether the registry credentials are configured
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"haccpKeySet":  h.status.HACCPKeySet,
		"foodqrKeySet": h.status.FoodQRKeySet,
	})
}

// SearchProduct looks a product up by barcode or report number and lists its allergens
func (h *Handler) SearchProduct(c *gin.Context) {
	if h.lookup == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Product lookup not configured"})
		return
	}

	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// A client hanging up must not cut a registry call short.
	ctx := context.WithoutCancel(c.Request.Context())
	outcome := h.lookup.Lookup(ctx, request.SearchValue)

	switch outcome.Kind {
	case domain.OutcomeFound:
		c.JSON(http.StatusOK, searchResponse{
			ProductName:      outcome.Product.ProductName,
			Source:           outcome.Product.SourceLabel(),
			SearchMethod:     outcome.Product.SearchMethod,
			RawMaterials:     outcome.Product.RawMaterials,
			FoundIngredients: outcome.Allergens,
		})
	case domain.OutcomeFoundNoIngredients:
		c.JSON(http.StatusOK, searchResponse{
			ProductName:      outcome.Product.ProductName,
			Source:           outcome.Product.SourceLabel(),
			SearchMethod:     outcome.Product.SearchMethod,
			RawMaterials:     domain.NoIngredientsMessage,
			FoundIngredients: domain.DetectionResult{},
		})
	default:
		c.JSON(outcome.HTTPStatus(), gin.H{"error": outcome.Message()})
	}
}

// AddProduct stores a user-submitted product
func (h *Handler) AddProduct(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Product catalog not configured"})
		return
	}

	var request domain.AddProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.catalog.AddProduct(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingProductFields), errors.Is(err, domain.ErrMissingIdentifier):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrDuplicateProduct):
			c.JSON(http.StatusConflict, gin.H{"error": "Product already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to add product: %v", err)})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("%q has been added to the database!", product.ProductName),
		"product": gin.H{
			"id":          product.ID,
			"productName": product.ProductName,
			"barcode":     product.Barcode,
			"imrptNo":     product.ReportNumber,
		},
	})
}

// ListProducts returns every user-submitted product
func (h *Handler) ListProducts(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Product catalog not configured"})
		return
	}

	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]productSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, productSummary{
			ID:          p.ID,
			ProductName: p.ProductName,
			Barcode:     p.Barcode,
			ImrptNo:     p.ReportNumber,
			CreatedAt:   p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(summaries),
		"products": summaries,
	})
}
