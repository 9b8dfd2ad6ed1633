package intel

import (
	"regexp"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var sentenceRe = regexp.MustCompile(`[.!?]\s+`)

// splitSentences breaks content on sentence-ending punctuation followed by
// whitespace. Terminal punctuation stays attached to the preceding sentence.
func splitSentences(content string) []string {
	locs := sentenceRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		if s := strings.TrimSpace(content); s != "" {
			return []string{s}
		}
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range locs {
		s := strings.TrimSpace(content[start : loc[0]+1])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(content[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// joinContent concatenates the content of every page with a space separator.
func joinContent(pages []model.PageRecord) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, p.Content)
	}
	return strings.Join(parts, " ")
}
