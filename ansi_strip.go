package vellum

import "strings"

// ContainsAnsi reports whether s contains a CSI escape sequence.
func ContainsAnsi(s string) bool {
	return strings.Contains(s, "\x1b[")
}

// StripAnsi removes CSI and other ESC-prefixed escape sequences from s,
// leaving only the visible text. Used by the captured-log sink so that
// output written by libraries that colour their own stdout/stderr doesn't
// leak raw escape bytes into the log viewer's cell buffer.
func StripAnsi(s string) string {
	if !ContainsAnsi(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && !(s[i] >= 0x40 && s[i] <= 0x7E) {
				i++
			}
			if i < len(s) {
				i++
			}
		} else if s[i] == '\x1b' {
			i += 2
		} else {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
