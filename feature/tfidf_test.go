package feature

import (
	"math"
	"testing"

	"github.com/viant/pairly/vocab"
)

func TestTermFrequencyIDF(t *testing.T) {
	idf := vocab.IDF{101: 0.7, 102: 0.9}
	common := map[int32]struct{}{101: {}, 102: {}, 200: {}}
	ids := []int32{101, 101, 102, 103, 200}

	weights := TermFrequencyIDF(ids, common, idf)
	if len(weights) != 3 {
		t.Fatalf("weights = %v, want 3 entries", weights)
	}
	if got := weights[101]; math.Abs(got-2*0.7) > 1e-9 {
		t.Errorf("weights[101] = %v, want %v", got, 2*0.7)
	}
	if got := weights[102]; math.Abs(got-0.9) > 1e-9 {
		t.Errorf("weights[102] = %v, want %v", got, 0.9)
	}
	// No idf entry: the raw count stands in.
	if got := weights[200]; got != 1 {
		t.Errorf("weights[200] = %v, want 1", got)
	}
}

func TestTermFrequencyIDF_AbsentID(t *testing.T) {
	idf := vocab.IDF{101: 0.7}
	common := map[int32]struct{}{101: {}}
	weights := TermFrequencyIDF([]int32{102, 103}, common, idf)
	if got := weights[101]; got != 0 {
		t.Errorf("weights[101] = %v, want 0 for id absent from the list", got)
	}
}

func TestPositional(t *testing.T) {
	weights := map[int32]float64{101: 1.4, 102: 0.9}
	ids := []int32{101, 50, 102, 0, 0}
	rows := Positional(ids, weights)
	if len(rows) != len(ids) {
		t.Fatalf("rows = %d, want %d", len(rows), len(ids))
	}
	expected := [][2]float32{{1, 1.4}, {0, 0}, {1, 0.9}, {0, 0}, {0, 0}}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("row %d = %v, want %v", i, rows[i], expected[i])
		}
	}
}
