package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// stage is one step of the fallback search
type stage struct {
	source domain.ProductSource

	// requireIngredients makes a hit terminal only when it has ingredient text;
	// a hit without ingredients moves on to the next stage.
	requireIngredients bool
}

// LookupService runs the fallback search and allergen detection
type LookupService struct {
	stages   []stage
	detector *AllergenDetector
}

// NewLookupService creates a lookup over the local store, the certification
// registry and the QR-label registry, tried in that order. Nil sources are skipped.
func NewLookupService(
	local domain.ProductSource,
	certRegistry domain.ProductSource,
	qrLabel domain.ProductSource,
	detector *AllergenDetector,
) *LookupService {
	if detector == nil {
		detector = NewAllergenDetector()
	}

	// The local store only short-circuits when it has ingredients; the registries
	// are terminal on any hit.
	candidates := []stage{
		{source: local, requireIngredients: true},
		{source: certRegistry},
		{source: qrLabel},
	}

	stages := make([]stage, 0, len(candidates))
	for _, st := range candidates {
		if st.source != nil {
			stages = append(stages, st)
		}
	}

	return &LookupService{
		stages:   stages,
		detector: detector,
	}
}

// Lookup searches every source in order until one yields a usable product.
// Flow: trim -> local store -> HACCP -> Food QR -> detect allergens
func (s *LookupService) Lookup(ctx context.Context, searchValue string) (outcome domain.SearchOutcome) {
	key := strings.TrimSpace(searchValue)
	if key == "" {
		return domain.SearchOutcome{Kind: domain.OutcomeEmptyInput, Err: domain.ErrEmptySearchValue}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("search_value", key).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("lookup failed")
			outcome = domain.SearchOutcome{Kind: domain.OutcomeError, Err: fmt.Errorf("lookup panic: %v", r)}
		}
	}()

	log.Info().Str("search_value", key).Msg("search request")

	for i, st := range s.stages {
		name := st.source.Name().String()
		log.Info().Int("step", i+1).Str("source", name).Msg("searching")

		result := st.source.Search(ctx, key)
		switch result.Status {
		case domain.SourceTimedOut:
			log.Warn().Err(result.Err).Str("source", name).Msg("source timed out")
			return domain.SearchOutcome{Kind: domain.OutcomeTimeout, Err: result.Err}

		case domain.SourceFailed:
			log.Warn().Err(result.Err).Str("source", name).Msg("source failed, trying next")
			continue

		case domain.SourceFound:
			if result.Record == nil {
				continue
			}
			if st.requireIngredients && !result.Record.HasIngredients() {
				log.Info().Str("source", name).Msg("hit has no ingredients, trying next")
				continue
			}
			return s.found(result.Record)
		}
	}

	log.Info().Str("search_value", key).Msg("all sources returned no results")
	return domain.SearchOutcome{Kind: domain.OutcomeNotFound, Err: domain.ErrProductNotFound}
}

func (s *LookupService) found(record *domain.ProductRecord) domain.SearchOutcome {
	if !record.HasIngredients() {
		return domain.SearchOutcome{
			Kind:      domain.OutcomeFoundNoIngredients,
			Product:   record,
			Allergens: domain.DetectionResult{},
		}
	}

	return domain.SearchOutcome{
		Kind:      domain.OutcomeFound,
		Product:   record,
		Allergens: s.detector.Detect(record.RawMaterials),
	}
}
