package model

import (
	"encoding/json"
	"fmt"
)

// The service emits ranking entries as two-element arrays, e.g.
// ["Food", 300.0]. Decode and encode that shape directly.

// UnmarshalJSON decodes a [label, amount] pair.
func (c *CategoryAmount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("failed to decode category ranking entry: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("category ranking entry has %d elements, want 2", len(pair))
	}
	if err := json.Unmarshal(pair[0], &c.Category); err != nil {
		return fmt.Errorf("failed to decode ranking category: %w", err)
	}
	if err := json.Unmarshal(pair[1], &c.Amount); err != nil {
		return fmt.Errorf("failed to decode ranking amount: %w", err)
	}
	return nil
}

// MarshalJSON encodes the pair back into the service's array shape.
func (c CategoryAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Category, c.Amount})
}
