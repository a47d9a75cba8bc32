package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Arabic-script codepoints that render identically to their Persian
// counterparts but carry distinct codepoints.
var persianVariants = map[rune]rune{
	'ي': 'ی', // ARABIC LETTER YEH -> FARSI YEH
	'ى': 'ی', // ARABIC LETTER ALEF MAKSURA -> FARSI YEH
	'ك': 'ک', // ARABIC LETTER KAF -> KEHEH
}

// Zero-width joiners, direction marks, and BOMs are replaced with a plain
// space so the surrounding terms still separate.
var zeroWidthReplacer = strings.NewReplacer(
	"\u200c", " ", // ZERO WIDTH NON-JOINER
	"\u200d", " ", // ZERO WIDTH JOINER
	"\u200e", " ", // LEFT-TO-RIGHT MARK
	"\u200f", " ", // RIGHT-TO-LEFT MARK
	"\u2060", " ", // WORD JOINER
	"\ufeff", " ", // ZERO WIDTH NO-BREAK SPACE
)

// Text canonicalizes text for stable indexing and matching.
//
// It applies NFKC normalization, maps per-script character variants to one
// canonical form, strips zero-width marks, collapses whitespace runs to a
// single space, and trims. Empty input yields an empty string; Text never
// fails and is idempotent.
func Text(text string) string {
	if text == "" {
		return ""
	}

	normalized := norm.NFKC.String(text)
	normalized = strings.Map(mapVariant, normalized)
	normalized = zeroWidthReplacer.Replace(normalized)
	return strings.Join(strings.Fields(normalized), " ")
}

func mapVariant(r rune) rune {
	if mapped, ok := persianVariants[r]; ok {
		return mapped
	}
	return r
}
