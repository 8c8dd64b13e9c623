package batch

import (
	"github.com/viant/pairly/corpus"
	"github.com/viant/pairly/encode"
	"github.com/viant/pairly/feature"
	"github.com/viant/pairly/vocab"
)

// Generator drives epochs over an example list and assembles one batch per
// Next call. Each epoch yields floor(len(data)/batchSize)+1 batches; the tail
// batch may be short or empty. A generator owns its data slice header and
// permutes it in place between epochs; sharing the same slice across
// concurrently consumed generators is not supported, the vocabulary tables
// are read-only and safely shareable.
type Generator struct {
	options  *Options
	data     []*corpus.Example
	idf      vocab.IDF
	chars    vocab.CharVocabulary
	epoch    int
	batch    int
	perEpoch int
	produced int
}

// NewGenerator creates a generator over the given examples.
func NewGenerator(data []*corpus.Example, idf vocab.IDF, chars vocab.CharVocabulary, opts ...Option) *Generator {
	options := NewOptions(opts...)
	return &Generator{
		options:  options,
		data:     data,
		idf:      idf,
		chars:    chars,
		perEpoch: len(data)/options.BatchSize + 1,
	}
}

// BatchesPerEpoch returns the number of batches each epoch yields.
func (g *Generator) BatchesPerEpoch() int {
	return g.perEpoch
}

// Epoch returns the zero based index of the epoch currently being produced.
func (g *Generator) Epoch() int {
	return g.epoch
}

// Produced returns the number of batches yielded so far.
func (g *Generator) Produced() int {
	return g.produced
}

// Next assembles and returns the next batch, or false once all epochs are
// exhausted.
func (g *Generator) Next() (*Batch, bool) {
	if g.epoch >= g.options.Epochs {
		return nil, false
	}
	if g.batch == 0 && g.options.Shuffle {
		g.options.Rand.Shuffle(len(g.data), func(i, j int) {
			g.data[i], g.data[j] = g.data[j], g.data[i]
		})
	}
	start := g.batch * g.options.BatchSize
	end := start + g.options.BatchSize
	if start > len(g.data) {
		start = len(g.data)
	}
	if end > len(g.data) {
		end = len(g.data)
	}
	result := g.assemble(g.data[start:end])
	g.produced++
	g.batch++
	if g.batch >= g.perEpoch {
		g.batch = 0
		g.epoch++
	}
	return result, true
}

func (g *Generator) assemble(slice []*corpus.Example) *Batch {
	rows := len(slice)
	result := &Batch{
		Question:           make([][]int32, 0, rows),
		Answer:             make([][]int32, 0, rows),
		QuestionLength:     make([]int32, 0, rows),
		AnswerLength:       make([]int32, 0, rows),
		Label:              make([]float32, 0, rows),
		Weight:             make([]float32, 0, rows),
		Pairs:              make([]Pair, 0, rows),
		Overlap:            make([][2]float32, 0, rows),
		QuestionFeature:    make([][][2]float32, 0, rows),
		AnswerFeature:      make([][][2]float32, 0, rows),
		QuestionChar:       make([][][]int32, 0, rows),
		QuestionCharLength: make([][]int32, 0, rows),
		AnswerChar:         make([][][]int32, 0, rows),
		AnswerCharLength:   make([][]int32, 0, rows),
	}
	for _, example := range slice {
		weight := g.options.LossWeights[0]
		if example.Positive() {
			weight = g.options.LossWeights[1]
		}
		raw, weighted := feature.Overlap(example.QuestionVector, example.AnswerVector, example.QuestionLength, example.AnswerLength, g.idf)
		common := feature.CommonTerms(example.QuestionVector, example.AnswerVector, example.QuestionLength, example.AnswerLength)
		weights := feature.TermFrequencyIDF(example.QuestionVector, common, g.idf)

		question := encode.Pad(example.QuestionVector, g.options.MaxLength)
		answer := encode.Pad(example.AnswerVector, g.options.MaxLength)
		questionChar, questionCharLen := encode.Chars(example.QuestionTokens, g.chars, g.options.MaxLength, g.options.MaxWordLength)
		answerChar, answerCharLen := encode.Chars(example.AnswerTokens, g.chars, g.options.MaxLength, g.options.MaxWordLength)

		result.Question = append(result.Question, question)
		result.Answer = append(result.Answer, answer)
		result.QuestionLength = append(result.QuestionLength, example.QuestionLength)
		result.AnswerLength = append(result.AnswerLength, example.AnswerLength)
		result.Label = append(result.Label, example.Label)
		result.Weight = append(result.Weight, weight)
		result.Pairs = append(result.Pairs, Pair{QuestionID: example.QuestionID, AnswerID: example.AnswerID, Label: int(example.Label)})
		result.Overlap = append(result.Overlap, [2]float32{raw, weighted})
		result.QuestionFeature = append(result.QuestionFeature, feature.Positional(question, weights))
		result.AnswerFeature = append(result.AnswerFeature, feature.Positional(answer, weights))
		result.QuestionChar = append(result.QuestionChar, questionChar)
		result.QuestionCharLength = append(result.QuestionCharLength, questionCharLen)
		result.AnswerChar = append(result.AnswerChar, answerChar)
		result.AnswerCharLength = append(result.AnswerCharLength, answerCharLen)
	}
	return result
}
