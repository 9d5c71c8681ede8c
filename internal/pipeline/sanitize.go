package pipeline

import "strings"

const fence = "```"

// CleanJSONText strips surrounding code fences from model output.
// The first line of fenced text is dropped whatever its language tag; the last
// line is dropped only when it is a bare closing fence. Nested fences are peeled
// until the text no longer starts with one, so the result is stable.
func CleanJSONText(text string) string {
	if text == "" {
		return text
	}

	text = strings.TrimSpace(text)
	for strings.HasPrefix(text, fence) {
		text = stripFence(text)
	}
	return text
}

func stripFence(text string) string {
	lines := splitLines(text)[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == fence {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// splitLines splits on \n, \r\n and \r.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
