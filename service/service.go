// Package service wires vocabularies, corpus loading and batch generation
// behind one constructor. Load-time errors abort before any batch is
// produced; a corrupted vocabulary or answer mapping would silently corrupt
// every downstream feature.
package service

import (
	"context"

	"github.com/viant/pairly/batch"
	"github.com/viant/pairly/cache"
	"github.com/viant/pairly/corpus"
	"github.com/viant/pairly/fs"
	"github.com/viant/pairly/vocab"
)

// Service holds the loaded, read-only dataset for one config. It is safe to
// hand out multiple generators; each receives its own view of the example
// list so per epoch shuffles do not interfere.
type Service struct {
	config     *Config
	fs         fs.Service
	vocabulary vocab.Vocabulary
	idf        vocab.IDF
	chars      vocab.CharVocabulary
	pool       *cache.Map[string, corpus.Answer]
	examples   []*corpus.Example
}

// New loads all sources named by the config and returns a ready service.
func New(ctx context.Context, config *Config, opts ...Option) (*Service, error) {
	config.Init()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	srv := &Service{config: config}
	for _, opt := range opts {
		opt(srv)
	}
	if srv.fs == nil {
		srv.fs = fs.NewAFS()
	}
	var err error
	if srv.vocabulary, srv.idf, err = vocab.Load(ctx, srv.fs, config.Vocabulary); err != nil {
		return nil, err
	}
	if srv.chars, err = vocab.LoadChars(ctx, srv.fs, config.CharVocabulary); err != nil {
		return nil, err
	}
	srv.pool, srv.examples, err = corpus.LoadOrBuild(ctx, srv.fs, config.Snapshot, config.Answers, config.Pairs, srv.vocabulary, config.MaxLength)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

// Option customizes a Service before loading.
type Option func(*Service)

// WithFS injects a custom file service implementation.
func WithFS(fsys fs.Service) Option {
	return func(s *Service) {
		s.fs = fsys
	}
}

// Vocabulary returns the loaded term vocabulary.
func (s *Service) Vocabulary() vocab.Vocabulary {
	return s.vocabulary
}

// IDF returns the loaded inverse document frequency table.
func (s *Service) IDF() vocab.IDF {
	return s.idf
}

// Chars returns the loaded character vocabulary.
func (s *Service) Chars() vocab.CharVocabulary {
	return s.chars
}

// Answers returns the loaded answer pool.
func (s *Service) Answers() *cache.Map[string, corpus.Answer] {
	return s.pool
}

// Examples returns the loaded example list.
func (s *Service) Examples() []*corpus.Example {
	return s.examples
}

// Generator builds a batch generator configured from the service config;
// opts override config derived settings. The generator shuffles a private
// copy of the example list.
func (s *Service) Generator(opts ...batch.Option) *batch.Generator {
	options := []batch.Option{
		batch.WithBatchSize(s.config.BatchSize),
		batch.WithEpochs(s.config.Epochs),
		batch.WithLossWeights(s.config.LossWeights[0], s.config.LossWeights[1]),
		batch.WithMaxLength(s.config.MaxLength),
		batch.WithMaxWordLength(s.config.MaxWordLength),
		batch.WithShuffle(*s.config.Shuffle),
	}
	options = append(options, opts...)
	data := make([]*corpus.Example, len(s.examples))
	copy(data, s.examples)
	return batch.NewGenerator(data, s.idf, s.chars, options...)
}
