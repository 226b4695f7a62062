package domain

import "errors"

var (
	// ErrEmptySearchValue is returned when the search key is blank
	ErrEmptySearchValue = errors.New("please enter a product number or barcode")

	// ErrProductNotFound is returned when no source knows the search key
	ErrProductNotFound = errors.New("product not found in any database")

	// ErrNoItems is returned when a registry response carries no items
	ErrNoItems = errors.New("registry response contains no items")

	// ErrUpstreamFailure is returned when a registry request fails
	ErrUpstreamFailure = errors.New("registry request failed")

	// ErrUpstreamTimeout is returned when a registry request exceeds its timeout
	ErrUpstreamTimeout = errors.New("registry request timed out")

	// ErrMissingProductFields is returned when a new product lacks name or raw materials
	ErrMissingProductFields = errors.New("product name and raw materials are required")

	// ErrMissingIdentifier is returned when a new product has neither barcode nor report number
	ErrMissingIdentifier = errors.New("please provide barcode or imrptNo")

	// ErrDuplicateProduct is returned when a product with the same barcode or report number exists
	ErrDuplicateProduct = errors.New("product already exists")

	// ErrPersistence is returned when the product store fails
	ErrPersistence = errors.New("product store failure")
)
