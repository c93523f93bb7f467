package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// reviews and tags are plain text; every tag is stripped
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from user text and trims surrounding space.
func SanitizeText(input string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(input)))
}

// SanitizeTags cleans each tag, drops empty and duplicate ones, and keeps at most limit.
func SanitizeTags(tags []string, limit int) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, t := range tags {
		t = strings.TrimPrefix(SanitizeText(t), "#")
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
