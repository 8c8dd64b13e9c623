package service

import (
	"context"
	"fmt"

	"github.com/viant/pairly/fs"
	"gopkg.in/yaml.v3"
)

// Config defines data sources and batching parameters for one dataset.
type Config struct {
	// Vocabulary is the term vocabulary URL (termId, term, unused, docFreq, totalDocs).
	Vocabulary string `yaml:"vocabulary"`
	// CharVocabulary is the character vocabulary URL (charId, char).
	CharVocabulary string `yaml:"charVocabulary"`
	// Answers is the answer pool URL (answerId, answerText).
	Answers string `yaml:"answers"`
	// Pairs is the labeled question/answer pair file URL.
	Pairs string `yaml:"pairs"`
	// Snapshot is an optional URL for the pre-encoded dataset snapshot.
	Snapshot string `yaml:"snapshot,omitempty"`

	BatchSize     int       `yaml:"batchSize"`
	Epochs        int       `yaml:"epochs"`
	LossWeights   []float32 `yaml:"lossWeights"`
	MaxLength     int       `yaml:"maxLength"`
	MaxWordLength int       `yaml:"maxWordLength"`
	Shuffle       *bool     `yaml:"shuffle"`
}

// LoadConfig loads and validates a yaml config from the given URL.
func LoadConfig(ctx context.Context, fsys fs.Service, URL string) (*Config, error) {
	data, err := fsys.Download(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return cfg, nil
}

// Init applies defaults for unset optional values.
func (c *Config) Init() {
	if c.BatchSize == 0 {
		c.BatchSize = 64
	}
	if c.Epochs == 0 {
		c.Epochs = 1
	}
	if len(c.LossWeights) == 0 {
		c.LossWeights = []float32{1, 1}
	}
	if c.MaxLength == 0 {
		c.MaxLength = 100
	}
	if c.MaxWordLength == 0 {
		c.MaxWordLength = 16
	}
	if c.Shuffle == nil {
		shuffle := true
		c.Shuffle = &shuffle
	}
}

// Validate checks the config is complete and consistent.
func (c *Config) Validate() error {
	if c.Vocabulary == "" {
		return fmt.Errorf("vocabulary was empty")
	}
	if c.CharVocabulary == "" {
		return fmt.Errorf("charVocabulary was empty")
	}
	if c.Answers == "" {
		return fmt.Errorf("answers was empty")
	}
	if c.Pairs == "" {
		return fmt.Errorf("pairs was empty")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batchSize must be positive, had %v", c.BatchSize)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive, had %v", c.Epochs)
	}
	if len(c.LossWeights) != 2 {
		return fmt.Errorf("lossWeights must have 2 elements (negative, positive), had %v", len(c.LossWeights))
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("maxLength must be positive, had %v", c.MaxLength)
	}
	if c.MaxWordLength <= 0 {
		return fmt.Errorf("maxWordLength must be positive, had %v", c.MaxWordLength)
	}
	return nil
}
