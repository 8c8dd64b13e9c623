package feature

import (
	"github.com/viant/pairly/vocab"
)

// TermFrequencyIDF weights each shared id by its occurrence count in ids
// multiplied by its idf weight, falling back to the raw count for ids without
// an idf entry. Shared ids absent from ids count as zero.
func TermFrequencyIDF(ids []int32, common map[int32]struct{}, idf vocab.IDF) map[int32]float64 {
	frequency := map[int32]int{}
	for _, id := range ids {
		if _, ok := common[id]; ok {
			frequency[id]++
		}
	}
	weights := make(map[int32]float64, len(common))
	for id := range common {
		count := float64(frequency[id])
		if weight, ok := idf[id]; ok {
			weights[id] = count * weight
		} else {
			weights[id] = count
		}
	}
	return weights
}

// Positional emits one [present, weight] row per id position: 1 and the
// tf-idf value when the id has a weight, zeros otherwise. Padding positions
// stay zero since id 0 never carries a weight.
func Positional(ids []int32, weights map[int32]float64) [][2]float32 {
	rows := make([][2]float32, len(ids))
	for i, id := range ids {
		if weight, ok := weights[id]; ok {
			rows[i] = [2]float32{1, float32(weight)}
		}
	}
	return rows
}
