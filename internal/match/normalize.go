package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a name for fuzzy matching: case is folded and
// separators are dropped. Module specifiers lose their leading scope,
// relative prefix and file extension, so "@acme/Data-Source" and
// "./datasource.js" both normalize to "datasource".
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range trimSpecifier(s) {
		if !isSeparator(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

func trimSpecifier(s string) string {
	if strings.HasPrefix(s, "@") {
		if i := strings.IndexByte(s, '/'); i >= 0 {
			s = s[i+1:]
		}
	}

	for strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") {
		s = s[strings.IndexByte(s, '/')+1:]
	}

	for _, ext := range []string{".mjs", ".cjs", ".js", ".ts"} {
		if strings.HasSuffix(s, ext) && len(s) > len(ext) {
			return strings.TrimSuffix(s, ext)
		}
	}

	return s
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', '/', '@', '$':
		return true
	default:
		return false
	}
}
