package domain

import "time"

// SourceName identifies where a product record came from
type SourceName int

const (
	SourceLocalStore SourceName = iota
	SourceCertRegistry
	SourceQRLabel
)

// String returns the display name used in API responses
func (s SourceName) String() string {
	switch s {
	case SourceLocalStore:
		return "Custom Database"
	case SourceCertRegistry:
		return "HACCP"
	case SourceQRLabel:
		return "Food QR (e-Label)"
	default:
		return "Unknown"
	}
}

// Search methods reported by the QR-label source
const (
	SearchMethodReportNumber = "reportNumber"
	SearchMethodBarcode      = "barcode"
)

// UnknownProductName is substituted when a registry item has no name
const UnknownProductName = "Unknown Product"

// ProductRecord is a product as returned by any source, normalized to one shape
type ProductRecord struct {
	ProductName  string     `json:"productName"`
	RawMaterials string     `json:"rawMaterials"`
	Source       SourceName `json:"-"`
	SearchMethod string     `json:"searchMethod,omitempty"`
}

// HasIngredients reports whether the record carries ingredient text
func (r *ProductRecord) HasIngredients() bool {
	return r != nil && r.RawMaterials != ""
}

// SourceLabel returns the display name including the search method, if any
func (r *ProductRecord) SourceLabel() string {
	if r.SearchMethod == "" {
		return r.Source.String()
	}
	return r.Source.String() + " - " + r.SearchMethod
}

// StoredProduct is a user-submitted product kept in the local store
type StoredProduct struct {
	ID           uint      `json:"id"`
	Barcode      string    `json:"barcode,omitempty"`
	ReportNumber string    `json:"imrptNo,omitempty"`
	ProductName  string    `json:"productName"`
	RawMaterials string    `json:"rawMaterials"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddProductRequest is the write-path payload
type AddProductRequest struct {
	ProductName  string `json:"productName"`
	Barcode      string `json:"barcode,omitempty"`
	ReportNumber string `json:"imrptNo,omitempty"`
	RawMaterials string `json:"rawMaterials"`
}

// SearchRequest is the lookup payload
type SearchRequest struct {
	SearchValue string `json:"searchValue"`
}
