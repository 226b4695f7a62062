package usecase

import (
	"context"
	"errors"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// LocalSource searches user-submitted products by barcode or report number
type LocalSource struct {
	repo domain.ProductRepository
}

// NewLocalSource creates a source over the product repository
func NewLocalSource(repo domain.ProductRepository) *LocalSource {
	return &LocalSource{repo: repo}
}

// Name identifies this source
func (s *LocalSource) Name() domain.SourceName {
	return domain.SourceLocalStore
}

// Search returns the first stored product matching key
func (s *LocalSource) Search(ctx context.Context, key string) domain.SourceResult {
	product, err := s.repo.FindByKey(ctx, key)
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.NotFound()
	}
	if err != nil {
		log.Error().Err(err).Str("source", "local").Msg("store lookup failed")
		return domain.Failed(err)
	}

	log.Info().Str("source", "local").Str("product", product.ProductName).Msg("found product")
	return domain.Found(&domain.ProductRecord{
		ProductName:  product.ProductName,
		RawMaterials: product.RawMaterials,
		Source:       domain.SourceLocalStore,
	})
}
