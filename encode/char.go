package encode

import (
	"github.com/viant/pairly/vocab"
)

// Chars builds a maxLen x maxWordLen grid of character ids, one row per token
// position. Tokens beyond maxLen are ignored; characters beyond maxWordLen
// are dropped; characters absent from the vocabulary stay 0. The returned
// lengths hold each token's surviving character count, defaulting to 1 for
// unused positions.
func Chars(tokens []string, chars vocab.CharVocabulary, maxLen, maxWordLen int) ([][]int32, []int32) {
	grid := make([][]int32, maxLen)
	for i := range grid {
		grid[i] = make([]int32, maxWordLen)
	}
	lengths := make([]int32, maxLen)
	for i := range lengths {
		lengths[i] = 1
	}
	n := len(tokens)
	if n > maxLen {
		n = maxLen
	}
	for i := 0; i < n; i++ {
		runes := []rune(tokens[i])
		if len(runes) > maxWordLen {
			runes = runes[:maxWordLen]
		}
		lengths[i] = int32(len(runes))
		for j, r := range runes {
			if id, ok := chars[string(r)]; ok {
				grid[i][j] = id
			}
		}
	}
	return grid, lengths
}
