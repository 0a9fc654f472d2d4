package main

import "strings"

const upperhex = "0123456789ABCDEF"

// encodePathSegment percent-encodes s for use as a single URL path segment.
// url.PathEscape is not strict enough here: it leaves '.', '-', '_', '~'
// and the sub-delims raw, and namespaced GitLab project IDs must arrive
// with every non-alphanumeric byte encoded, '/' as %2F in particular.
// Total and deterministic; encoding an already-encoded string re-encodes
// the '%' signs rather than failing.
func encodePathSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}
