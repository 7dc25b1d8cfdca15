package utils

import (
	"encoding/json"
	"regexp"
	"strings"

	"k8s.io/klog/v2"
)

// ExtractJSON returns the first balanced {...} object embedded in content,
// or content unchanged when none is found. Braces inside JSON string
// literals do not count toward the balance, so object fields holding
// free-form text (contract clauses with a stray } or {) survive intact.
func ExtractJSON(content string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range content {
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start != -1 {
				return content[start : i+1]
			}
		}
	}

	return content
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*")

// StripCodeFences removes markdown code-fence wrapping that language models
// add around JSON payloads despite instructions not to.
func StripCodeFences(content string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(content, ""))
}

func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("json marshal failed: %v", err)
		return ""
	}
	return string(jsonData)
}
