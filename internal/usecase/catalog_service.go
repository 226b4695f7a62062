package usecase

import (
	"context"
	"strings"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// CatalogService handles user-submitted products
type CatalogService struct {
	repo domain.ProductRepository
}

// NewCatalogService creates a catalog service over the product repository
func NewCatalogService(repo domain.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// AddProduct validates and stores a new product.
// Name and raw materials are required, plus at least one of barcode and report number.
func (s *CatalogService) AddProduct(ctx context.Context, request *domain.AddProductRequest) (*domain.StoredProduct, error) {
	if request == nil {
		return nil, domain.ErrMissingProductFields
	}

	product := &domain.StoredProduct{
		ProductName:  strings.TrimSpace(request.ProductName),
		Barcode:      strings.TrimSpace(request.Barcode),
		ReportNumber: strings.TrimSpace(request.ReportNumber),
		RawMaterials: strings.TrimSpace(request.RawMaterials),
	}

	if product.ProductName == "" || product.RawMaterials == "" {
		return nil, domain.ErrMissingProductFields
	}
	if product.Barcode == "" && product.ReportNumber == "" {
		return nil, domain.ErrMissingIdentifier
	}

	if err := s.repo.Create(ctx, product); err != nil {
		log.Error().Err(err).Str("product", product.ProductName).Msg("failed to add product")
		return nil, err
	}

	log.Info().Str("product", product.ProductName).Uint("id", product.ID).Msg("new product added")
	return product, nil
}

// ListProducts returns all stored products
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.StoredProduct, error) {
	return s.repo.List(ctx)
}
