// Package feature computes lexical overlap and tf-idf features for a
// question/answer pair. All functions are pure transforms over encoded id
// vectors; they allocate their results and never mutate inputs.
package feature

import (
	"github.com/viant/pairly/vocab"
)

// reservedID is the highest structural token id; ids at or below it are
// excluded from overlap scoring.
const reservedID = 100

// Overlap returns the raw and idf weighted overlap between the distinct
// informative question and answer term ids. Both ratios are normalized by the
// question side's distinct term count, floored at 1 so a question with no
// informative terms scores (0, 0) rather than dividing by zero.
func Overlap(qVec, aVec []int32, qLen, aLen int32, idf vocab.IDF) (float32, float32) {
	qSet := termSet(qVec, qLen)
	aSet := termSet(aVec, aLen)
	denominator := float64(len(qSet))
	if denominator < 1 {
		denominator = 1
	}
	var raw, weighted float64
	for id := range qSet {
		if _, ok := aSet[id]; !ok {
			continue
		}
		raw++
		if weight, ok := idf[id]; ok {
			weighted += weight
		}
	}
	return float32(raw / denominator), float32(weighted / denominator)
}

// CommonTerms returns the informative term ids shared by the question and
// answer sides, restricted to the first qLen and aLen positions.
func CommonTerms(qVec, aVec []int32, qLen, aLen int32) map[int32]struct{} {
	qSet := termSet(qVec, qLen)
	aSet := termSet(aVec, aLen)
	common := map[int32]struct{}{}
	for id := range qSet {
		if _, ok := aSet[id]; ok {
			common[id] = struct{}{}
		}
	}
	return common
}

func termSet(vec []int32, length int32) map[int32]struct{} {
	if length > int32(len(vec)) {
		length = int32(len(vec))
	}
	set := map[int32]struct{}{}
	for i := int32(0); i < length; i++ {
		if vec[i] > reservedID {
			set[vec[i]] = struct{}{}
		}
	}
	return set
}
