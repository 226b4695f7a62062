package domain

import (
	"bytes"
	"encoding/json"
)

// AllergenCategory is one tracked allergen group and its surface forms
type AllergenCategory struct {
	Key      string
	English  string
	Keywords []string
}

// AllergenMatch lists the keywords of one category found in a text
type AllergenMatch struct {
	Category string   `json:"-"`
	English  string   `json:"english"`
	Detected []string `json:"detected"`
}

// DetectionResult holds matched categories in keyword-table order.
// It marshals to a JSON object keyed by category, preserving that order.
type DetectionResult []AllergenMatch

// Get returns the match for a category key
func (d DetectionResult) Get(category string) (AllergenMatch, bool) {
	for _, m := range d {
		if m.Category == category {
			return m, true
		}
	}
	return AllergenMatch{}, false
}

// Keys returns the matched category keys in order
func (d DetectionResult) Keys() []string {
	keys := make([]string, 0, len(d))
	for _, m := range d {
		keys = append(keys, m.Category)
	}
	return keys
}

// MarshalJSON writes {"<category>": {"english": ..., "detected": [...]}, ...}
func (d DetectionResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Category)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
