// Package encode converts token sequences into fixed-shape index vectors and
// character grids. Encoding never truncates: callers slice tokens to the
// configured maximum length before calling in, so the recorded lengths and the
// padded shapes always agree.
package encode

import (
	"github.com/viant/pairly/vocab"
)

// Words converts tokens into vocabulary ids, substituting the reserved
// UNKNOWN id for out-of-vocabulary tokens. The returned vector has exactly
// one entry per input token; no padding is applied at this stage.
func Words(tokens []string, vocabulary vocab.Vocabulary) (int32, []int32) {
	unknown := vocabulary[vocab.Unknown]
	vec := make([]int32, 0, len(tokens))
	for _, token := range tokens {
		if id, ok := vocabulary[token]; ok {
			vec = append(vec, id)
		} else {
			vec = append(vec, unknown)
		}
	}
	return int32(len(vec)), vec
}

// Pad returns vec unchanged when it is already maxLen long, otherwise a zero
// filled vector of maxLen with vec copied in left aligned. Pad only pads;
// inputs longer than maxLen must have been truncated upstream.
func Pad(vec []int32, maxLen int) []int32 {
	if len(vec) == maxLen {
		return vec
	}
	padded := make([]int32, maxLen)
	copy(padded, vec)
	return padded
}
