package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed extraction.md
var Extraction string

// ClosingDelimiter ends every extraction prompt, right after the client text.
const ClosingDelimiter = `"""`

// BuildExtractionPrompt embeds the client text verbatim into the extraction template.
// The text is content for the model, never instructions.
func BuildExtractionPrompt(clientText string) string {
	return fmt.Sprintf(strings.TrimSpace(Extraction), clientText)
}
