package domain

import "net/http"

// OutcomeKind classifies the result of a lookup
type OutcomeKind string

const (
	OutcomeFound              OutcomeKind = "found"
	OutcomeFoundNoIngredients OutcomeKind = "found_no_ingredients"
	OutcomeNotFound           OutcomeKind = "not_found"
	OutcomeTimeout            OutcomeKind = "timeout"
	OutcomeError              OutcomeKind = "error"
	OutcomeEmptyInput         OutcomeKind = "empty_input"
)

// NoIngredientsMessage replaces empty ingredient text in responses
const NoIngredientsMessage = "No ingredient information available."

// SearchOutcome is the result of one fallback lookup
type SearchOutcome struct {
	Kind      OutcomeKind
	Product   *ProductRecord
	Allergens DetectionResult
	Err       error
}

// HTTPStatus maps the outcome kind to a response status code
func (o SearchOutcome) HTTPStatus() int {
	switch o.Kind {
	case OutcomeFound, OutcomeFoundNoIngredients:
		return http.StatusOK
	case OutcomeEmptyInput:
		return http.StatusBadRequest
	case OutcomeNotFound:
		return http.StatusNotFound
	case OutcomeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing error message for non-found outcomes
func (o SearchOutcome) Message() string {
	switch o.Kind {
	case OutcomeEmptyInput:
		return ErrEmptySearchValue.Error()
	case OutcomeNotFound:
		return "Product not found in any database."
	case OutcomeTimeout:
		return "API request timeout. Please try again."
	case OutcomeError:
		return "Server error"
	default:
		return ""
	}
}
