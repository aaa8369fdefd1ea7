package services

import "strings"

// SanitizeFilename strips path components and unsafe characters from a
// client-supplied filename while preserving the extension. Path
// separators become underscores, anything outside [A-Za-z0-9_.-] is
// dropped, and leading dots/dashes are trimmed so the result can never
// escape the container namespace or hide as a dotfile.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastUnderscore := false
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ' ':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			b.WriteRune(r)
			lastUnderscore = r == '_'
		}
	}

	out := strings.Trim(b.String(), "._-")
	if out == "" {
		return "file"
	}
	return out
}

// extension returns the lower-cased text after the final dot, or ""
// when the name has no dot.
func extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
