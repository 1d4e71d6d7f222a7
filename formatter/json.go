package formatter

import (
	"encoding/json"
	"fmt"
)

// BuildJSON serializes a record (or slice of records) to indented JSON
func BuildJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return b, nil
}
