// Package text splits reading material into words and picks focus points.
package text

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when the input contains no words.
var ErrEmptyInput = errors.New("no words to display")

// Tokenize splits content on runs of whitespace. It returns ErrEmptyInput
// when nothing but whitespace is left.
func Tokenize(content string) ([]string, error) {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	return words, nil
}
