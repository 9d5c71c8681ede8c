package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sant0-9/nebulaextract/internal/intent"
)

// Parsed holds model output that decoded as JSON.
type Parsed struct {
	Value  any
	Pretty string
	// Extraction is nil when the value is not an object of the expected shape.
	Extraction *intent.Extraction
}

// ParseResult is either a Parsed value or the raw text that failed to parse.
type ParseResult struct {
	Text   string
	Parsed *Parsed
}

func (r ParseResult) IsJSON() bool {
	return r.Parsed != nil
}

// ParseJSON decodes sanitized model output. Failure is reported through the
// result, never as an error.
func ParseJSON(text string) ParseResult {
	res := ParseResult{Text: text}

	data := []byte(strings.TrimSpace(text))
	if !json.Valid(data) {
		return res
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return res
	}

	pretty, err := prettyJSON(data)
	if err != nil {
		return res
	}

	parsed := &Parsed{Value: value, Pretty: pretty}
	if _, ok := value.(map[string]any); ok {
		if ex, err := intent.Decode(data); err == nil {
			parsed.Extraction = ex
		}
	}

	res.Parsed = parsed
	return res
}
