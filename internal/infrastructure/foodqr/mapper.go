package foodqr

import (
	"github.com/allergenlens/backend/internal/domain"
	"github.com/allergenlens/backend/internal/infrastructure/registry"
	"github.com/allergenlens/backend/internal/infrastructure/textnorm"
)

// Food QR item field names
const (
	FieldProductName = "prdctNm"
	FieldPreview     = "prvwCn" // HTML label preview holding the ingredient list
)

// MapToProductRecord converts a Food QR item to our domain ProductRecord.
// The HTML preview is reduced to plain text.
func MapToProductRecord(item map[string]any, searchMethod string) *domain.ProductRecord {
	name := registry.StringField(item, FieldProductName)
	if name == "" {
		name = domain.UnknownProductName
	}

	return &domain.ProductRecord{
		ProductName:  name,
		RawMaterials: textnorm.Normalize(registry.StringField(item, FieldPreview)),
		Source:       domain.SourceQRLabel,
		SearchMethod: searchMethod,
	}
}

// preview shortens ingredient text for debug logs
func preview(s string) string {
	r := []rune(s)
	if len(r) > 200 {
		return string(r[:200])
	}
	return s
}
