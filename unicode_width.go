package vellum

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// GraphemeWidth returns the terminal column width of the first extended
// grapheme cluster in s (1 for most glyphs, 2 for wide CJK/emoji glyphs,
// 0 for zero-width marks), and the byte length of that cluster. Callers
// writing a cell must follow a width>1 grapheme with width-1 continuation
// cells, per the Cell & Buffer wide-glyph rule.
func GraphemeWidth(s string) (width int, size int) {
	if s == "" {
		return 0, 0
	}
	tokens := graphemes.FromString(s)
	if !tokens.Next() {
		return 0, 0
	}
	cluster := tokens.Value().String()
	return runewidth.StringWidth(cluster), len(cluster)
}

// RuneWidth returns the column width of a single rune, for callers that
// already operate rune-at-a-time and don't need cluster segmentation.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}
