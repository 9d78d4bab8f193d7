package pricing

import (
	"strings"
	"unicode"
)

// ProductKey generates the price database key for a brand and model:
// lowercase, spaces and dashes become underscores, everything else that is
// not a letter or digit is dropped. Letters and digits of any script are
// kept, so Arabic and other non-Latin names get distinct keys. A name with
// no letters or digits yields "".
//
// Example: ("Apple", "iPhone 13-Pro") -> "apple_iphone_13_pro".
func ProductKey(brand, model string) string {
	return normalizeKey(brand + " " + model)
}

// CacheKey generates the price cache key; the category is appended when set.
func CacheKey(brand, model, category string) string {
	key := ProductKey(brand, model)
	if key == "" {
		return ""
	}
	if c := normalizeKey(category); c != "" {
		key += "_" + c
	}
	return key
}

func normalizeKey(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteRune('_')
				lastUnderscore = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
