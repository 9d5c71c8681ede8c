package llm

import (
	"bytes"
	"encoding/json"
)

// ExtractText returns the text of the first part of the first candidate.
// When there is nothing to extract it returns the whole response as indented
// JSON so the caller can still see what came back.
func ExtractText(resp *GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return prettyResponse(resp)
	}
	return resp.Candidates[0].Content.Parts[0].Text
}

func prettyResponse(resp *GenerateResponse) string {
	if resp == nil {
		return "null"
	}

	var buf bytes.Buffer
	if len(resp.raw) > 0 {
		if err := json.Indent(&buf, bytes.TrimSpace(resp.raw), "", "  "); err == nil {
			return buf.String()
		}
		buf.Reset()
	}

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return string(resp.raw)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
