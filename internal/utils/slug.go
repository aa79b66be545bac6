package utils

import "strings"

// Slugify derives a URL slug from a page name: lowercase, diacritics-free
// ASCII where possible, runs of non-alphanumerics collapsed to single
// hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == 'é' || r == 'è' || r == 'ê' || r == 'ë':
			b.WriteRune('e')
			lastHyphen = false
		case r == 'à' || r == 'á' || r == 'â' || r == 'ä':
			b.WriteRune('a')
			lastHyphen = false
		case r == 'ï' || r == 'î' || r == 'í' || r == 'ì':
			b.WriteRune('i')
			lastHyphen = false
		case r == 'ö' || r == 'ô' || r == 'ó' || r == 'ò':
			b.WriteRune('o')
			lastHyphen = false
		case r == 'ü' || r == 'û' || r == 'ú' || r == 'ù':
			b.WriteRune('u')
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
