package usecase

import (
	"context"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of domain.ProductSource
type MockSource struct {
	mock.Mock
	name domain.SourceName
}

func NewMockSource(name domain.SourceName) *MockSource {
	return &MockSource{name: name}
}

func (m *MockSource) Name() domain.SourceName {
	return m.name
}

func (m *MockSource) Search(ctx context.Context, key string) domain.SourceResult {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.SourceResult)
}

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByKey(ctx context.Context, key string) (*domain.StoredProduct, error) {
	args := m.Called(ctx, key)
	product, _ := args.Get(0).(*domain.StoredProduct)
	return product, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.StoredProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.StoredProduct, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.StoredProduct)
	return products, args.Error(1)
}
