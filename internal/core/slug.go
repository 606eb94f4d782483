package core

import "strings"

// slugify normalizes a free-text product name into a stable grouping key:
// lowercase, runs of whitespace collapsed to "-", everything but word
// characters and hyphens stripped. "Beef Fillet" and " beef  fillet " both
// map to "beef-fillet", so repeat purchases collapse into one balance group.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
