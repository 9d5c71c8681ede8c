// Package intent holds the typed view of what the model extracts from client
// text. Fields are pointers because the model reports missing values as null.
package intent

import "encoding/json"

// Priority is the urgency the model assigns to the client text.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Extraction is the object the extraction prompt asks the model for.
type Extraction struct {
	Summary  *string   `json:"summary"`
	Intent   *string   `json:"intent"`
	Priority *Priority `json:"priority"`
	Entities Entities  `json:"entities"`
}

// Entities are the contact details found in the text.
type Entities struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Decode reads an Extraction from a JSON object. Unknown keys are ignored and
// absent keys stay nil.
func Decode(data []byte) (*Extraction, error) {
	var ex Extraction
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}
