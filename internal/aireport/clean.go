package aireport

import "strings"

const fence = "```"

// CleanJSONBlock strips markdown code fences (with or without a language tag) from a model reply.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, fence)
	if start < 0 {
		return text
	}
	end := strings.LastIndex(text, fence)
	inner := text[start+len(fence):]
	if end > start {
		inner = text[start+len(fence) : end]
	}

	// Skip a language identifier such as "json" on the opening fence line.
	if idx := strings.Index(inner, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(inner[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[\"") {
			inner = inner[idx+1:]
		}
	} else {
		inner = strings.TrimPrefix(strings.TrimSpace(inner), "json")
	}
	return strings.TrimSpace(strings.ReplaceAll(inner, fence, ""))
}

// StripFences removes fence markers but keeps every line of prose around and
// between them.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, fence+"json", "")
	return strings.TrimSpace(strings.ReplaceAll(text, fence, ""))
}
