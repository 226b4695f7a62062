package usecase

import (
	"strings"

	"github.com/allergenlens/backend/internal/domain"
)

// AllergenDetector scans ingredient text for allergen keywords.
// Matching is literal, case-sensitive substring containment.
type AllergenDetector struct {
	categories []domain.AllergenCategory
}

// NewAllergenDetector creates a detector over the built-in keyword table
func NewAllergenDetector() *AllergenDetector {
	return NewAllergenDetectorWithTable(allergenTable)
}

// NewAllergenDetectorWithTable creates a detector over a custom table
func NewAllergenDetectorWithTable(categories []domain.AllergenCategory) *AllergenDetector {
	return &AllergenDetector{categories: categories}
}

// Detect returns every category with at least one keyword in rawMaterials,
// each with all its matched keywords, in table order.
func (d *AllergenDetector) Detect(rawMaterials string) domain.DetectionResult {
	result := domain.DetectionResult{}
	if rawMaterials == "" {
		return result
	}

	for _, category := range d.categories {
		var detected []string
		for _, keyword := range category.Keywords {
			if strings.Contains(rawMaterials, keyword) {
				detected = append(detected, keyword)
			}
		}

		if len(detected) > 0 {
			result = append(result, domain.AllergenMatch{
				Category: category.Key,
				English:  category.English,
				Detected: detected,
			})
		}
	}

	return result
}
