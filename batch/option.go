package batch

import (
	"math/rand"
	"time"
)

// Options controls batch assembly.
type Options struct {

	// BatchSize is the number of examples per full batch.
	BatchSize int

	// Epochs is the number of passes over the dataset.
	Epochs int

	// LossWeights holds per class sample weights, index 0 for negative
	// examples and index 1 for positive ones.
	LossWeights [2]float32

	// MaxLength is the padded word sequence length.
	MaxLength int

	// MaxWordLength is the padded per token character length.
	MaxWordLength int

	// Shuffle enables a full in-place permutation of the dataset per epoch.
	Shuffle bool

	// Rand drives shuffling; injectable for deterministic tests.
	Rand *rand.Rand
}

// NewOptions creates a new Options instance with default values
func NewOptions(opts ...Option) *Options {
	options := &Options{
		BatchSize:     64,
		Epochs:        1,
		LossWeights:   [2]float32{1, 1},
		MaxLength:     100,
		MaxWordLength: 16,
		Shuffle:       true,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithBatchSize sets the number of examples per batch
func WithBatchSize(size int) Option {
	return func(o *Options) {
		o.BatchSize = size
	}
}

// WithEpochs sets the number of passes over the dataset
func WithEpochs(epochs int) Option {
	return func(o *Options) {
		o.Epochs = epochs
	}
}

// WithLossWeights sets the per class sample weights
func WithLossWeights(negative, positive float32) Option {
	return func(o *Options) {
		o.LossWeights = [2]float32{negative, positive}
	}
}

// WithMaxLength sets the padded word sequence length
func WithMaxLength(maxLen int) Option {
	return func(o *Options) {
		o.MaxLength = maxLen
	}
}

// WithMaxWordLength sets the padded per token character length
func WithMaxWordLength(maxWordLen int) Option {
	return func(o *Options) {
		o.MaxWordLength = maxWordLen
	}
}

// WithShuffle toggles per epoch shuffling
func WithShuffle(enabled bool) Option {
	return func(o *Options) {
		o.Shuffle = enabled
	}
}

// WithRand injects the random source used for shuffling
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}
