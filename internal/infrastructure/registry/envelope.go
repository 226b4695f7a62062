package registry

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/allergenlens/backend/internal/domain"
)

// nestedItemKey is the key some registries wrap each product in
const nestedItemKey = "item"

// Envelope describes where a registry response keeps its items
type Envelope struct {
	// ItemsPath is a JSONPath to the items value, e.g. "$.body.items"
	ItemsPath string

	// ObjectNeedsItem rejects an items object that has no nested "item"
	ObjectNeedsItem bool
}

// FirstItem decodes body and returns the first product object under the envelope.
// items may be an object or a list; one level of "item" nesting is unwrapped.
// Returns domain.ErrNoItems when there is nothing to take.
func FirstItem(body []byte, env Envelope) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamFailure, err)
	}

	items, err := jsonpath.Get(env.ItemsPath, doc)
	if err != nil {
		return nil, domain.ErrNoItems
	}

	switch v := items.(type) {
	case map[string]any:
		if len(v) == 0 {
			return nil, domain.ErrNoItems
		}
		if nested, ok := unwrapItem(v); ok {
			return nested, nil
		}
		if _, has := v[nestedItemKey]; has || env.ObjectNeedsItem {
			return nil, domain.ErrNoItems
		}
		return v, nil

	case []any:
		if len(v) == 0 {
			return nil, domain.ErrNoItems
		}
		first, ok := v[0].(map[string]any)
		if !ok || len(first) == 0 {
			return nil, domain.ErrNoItems
		}
		if nested, ok := unwrapItem(first); ok {
			return nested, nil
		}
		if _, has := first[nestedItemKey]; has {
			return nil, domain.ErrNoItems
		}
		return first, nil

	default:
		// data.go.kr answers "items": "" when nothing matched
		return nil, domain.ErrNoItems
	}
}

// unwrapItem returns m["item"] when it is a non-empty object, or the first
// object of a non-empty list.
func unwrapItem(m map[string]any) (map[string]any, bool) {
	switch v := m[nestedItemKey].(type) {
	case map[string]any:
		return v, len(v) > 0
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		first, ok := v[0].(map[string]any)
		return first, ok && len(first) > 0
	default:
		return nil, false
	}
}

// StringField reads a scalar field of an item as a string
func StringField(item map[string]any, key string) string {
	switch v := item[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
