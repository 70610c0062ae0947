package generate

import "strings"

// extractJSONArray pulls the JSON array out of a model completion.
// Models decorate the array with prose or markdown fences often enough
// that the outermost brackets are the only reliable delimiters.
func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && start < end {
		return text[start : end+1]
	}

	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
