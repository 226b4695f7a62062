package haccp

import (
	"github.com/allergenlens/backend/internal/domain"
	"github.com/allergenlens/backend/internal/infrastructure/registry"
)

// HACCP item field names
const (
	FieldProductName  = "prdlstNm"
	FieldRawMaterials = "rawmtrl"
	FieldReportNumber = "prdlstReportNo"
)

// MapToProductRecord converts a HACCP item to our domain ProductRecord
func MapToProductRecord(item map[string]any) *domain.ProductRecord {
	name := registry.StringField(item, FieldProductName)
	if name == "" {
		name = domain.UnknownProductName
	}

	return &domain.ProductRecord{
		ProductName:  name,
		RawMaterials: registry.StringField(item, FieldRawMaterials),
		Source:       domain.SourceCertRegistry,
	}
}
