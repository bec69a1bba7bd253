package text

import "unicode/utf8"

// FocusIndex returns the rune index of the optimal recognition point for word.
// Longer words anchor the eye further right.
func FocusIndex(word string) int {
	n := utf8.RuneCountInString(word)
	switch {
	case n <= 1:
		return 0
	case n <= 5:
		return 1
	case n <= 9:
		return 2
	case n <= 13:
		return 3
	default:
		return 4
	}
}

// SplitFocus splits word around its focus rune.
func SplitFocus(word string) (before, focus, after string) {
	runes := []rune(word)
	idx := FocusIndex(word)
	if idx >= len(runes) {
		return word, "", ""
	}
	return string(runes[:idx]), string(runes[idx]), string(runes[idx+1:])
}
