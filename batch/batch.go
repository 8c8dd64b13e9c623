// Package batch assembles column aligned training batches across shuffled
// epochs. A Generator is a finite pull based sequence: the consumer calls
// Next until exhaustion, one batch computed per call.
package batch

// Pair links a batch row back to its source question and answer ids.
type Pair struct {
	QuestionID string
	AnswerID   string
	Label      int
}

// Batch holds one mini batch as column aligned arrays, one row per example in
// the slice. Word columns are padded to maxLen, character columns to
// maxLen x maxWordLen. The final batch of an epoch may be shorter than the
// batch size, or empty when the dataset size is an exact multiple of it; an
// empty batch is still structurally valid.
type Batch struct {
	Question           [][]int32
	Answer             [][]int32
	QuestionLength     []int32
	AnswerLength       []int32
	Label              []float32
	Weight             []float32
	Pairs              []Pair
	Overlap            [][2]float32
	QuestionFeature    [][][2]float32
	AnswerFeature      [][][2]float32
	QuestionChar       [][][]int32
	QuestionCharLength [][]int32
	AnswerChar         [][][]int32
	AnswerCharLength   [][]int32
}

// Size returns the number of rows in the batch.
func (b *Batch) Size() int {
	return len(b.Label)
}
