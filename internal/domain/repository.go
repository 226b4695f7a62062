package domain

import "context"

// ProductSource is one data source consulted by the fallback lookup
type ProductSource interface {
	Name() SourceName
	Search(ctx context.Context, key string) SourceResult
}

// ProductRepository defines persistence for user-submitted products
type ProductRepository interface {
	// FindByKey returns the first product whose barcode or report number equals key.
	// Returns ErrProductNotFound when there is none.
	FindByKey(ctx context.Context, key string) (*StoredProduct, error)

	// Create inserts a product. Returns ErrDuplicateProduct when a row already
	// has the same barcode or the same report number.
	Create(ctx context.Context, product *StoredProduct) error

	// List returns every stored product in insertion order
	List(ctx context.Context) ([]StoredProduct, error)
}
