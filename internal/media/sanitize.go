package media

import (
	"strings"
)

// SanitizeFilename reduces a client supplied file name to a safe plain name:
// path components are stripped, spaces become underscores and everything
// outside ASCII letters, digits, dot, dash and underscore is dropped.
func SanitizeFilename(name string) string {
	// strip any path component, client side paths are untrusted
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder

	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	out := strings.TrimLeft(b.String(), ".")

	if out == "" {
		return "upload"
	}

	return out
}

// webpName swaps the extension of a sanitized name for .webp.
func webpName(name string) string {
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	return name + ".webp"
}
