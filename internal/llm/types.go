package llm

import "encoding/json"

// GenerateRequest is the generateContent request body.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content wraps the parts of one message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment.
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse is the decoded generateContent response.
// Absent fields decode to their zero values.
type GenerateResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
	ModelVersion  string         `json:"modelVersion,omitempty"`

	raw json.RawMessage
}

// Candidate is one generated response option.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// UsageMetadata tracks token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// NewTextRequest builds a request with the prompt as its single part.
func NewTextRequest(prompt string) GenerateRequest {
	return GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
}

// DecodeResponse decodes a response body and keeps the raw bytes for diagnostics.
func DecodeResponse(data []byte) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	resp.raw = append(json.RawMessage(nil), data...)
	return &resp, nil
}
