package filter

import "strings"

// Blocklist rejects prompts containing any listed keyword. Matching is a
// case-insensitive substring scan; this is a placeholder for real
// moderation, admins expand the list via configuration.
type Blocklist struct {
	words []string
}

func NewBlocklist(words []string) *Blocklist {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}
	return &Blocklist{words: lowered}
}

// IsBlocked reports whether text contains any blocked keyword.
func (b *Blocklist) IsBlocked(text string) bool {
	t := strings.ToLower(text)
	for _, w := range b.words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}
