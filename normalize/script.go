package normalize

// ContainsArabicScript reports whether text contains at least one character
// from the Arabic Unicode block (U+0600..U+06FF), which covers Persian.
// It is a heuristic for choosing the answer language of localized messages.
func ContainsArabicScript(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06ff {
			return true
		}
	}
	return false
}
