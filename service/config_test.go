package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viant/pairly/fs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	if err := os.WriteFile(location, []byte(content), 0o644); err != nil {
		t.Fatalf("write %v: %v", name, err)
	}
	return location
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	URL := writeFile(t, dir, "config.yaml", `
vocabulary: /data/vocab.txt
charVocabulary: /data/chars.txt
answers: /data/answers.txt
pairs: /data/pairs.txt
batchSize: 128
epochs: 3
lossWeights: [1.0, 2.5]
maxLength: 50
maxWordLength: 12
shuffle: false
`)
	cfg, err := LoadConfig(context.Background(), fs.NewAFS(), URL)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BatchSize != 128 || cfg.Epochs != 3 || cfg.MaxLength != 50 || cfg.MaxWordLength != 12 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LossWeights[0] != 1.0 || cfg.LossWeights[1] != 2.5 {
		t.Errorf("loss weights = %v", cfg.LossWeights)
	}
	if *cfg.Shuffle {
		t.Error("expected shuffle disabled")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	URL := writeFile(t, dir, "config.yaml", `
vocabulary: /data/vocab.txt
charVocabulary: /data/chars.txt
answers: /data/answers.txt
pairs: /data/pairs.txt
`)
	cfg, err := LoadConfig(context.Background(), fs.NewAFS(), URL)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BatchSize != 64 || cfg.Epochs != 1 || cfg.MaxLength != 100 || cfg.MaxWordLength != 16 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.LossWeights) != 2 || cfg.LossWeights[0] != 1 || cfg.LossWeights[1] != 1 {
		t.Errorf("loss weight defaults = %v", cfg.LossWeights)
	}
	if cfg.Shuffle == nil || !*cfg.Shuffle {
		t.Error("expected shuffle enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{
			Vocabulary:     "/data/vocab.txt",
			CharVocabulary: "/data/chars.txt",
			Answers:        "/data/answers.txt",
			Pairs:          "/data/pairs.txt",
		}
		cfg.Init()
		return cfg
	}
	testCases := []struct {
		name     string
		mutate   func(*Config)
		fragment string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing vocabulary", mutate: func(c *Config) { c.Vocabulary = "" }, fragment: "vocabulary"},
		{name: "missing pairs", mutate: func(c *Config) { c.Pairs = "" }, fragment: "pairs"},
		{name: "negative batch size", mutate: func(c *Config) { c.BatchSize = -1 }, fragment: "batchSize"},
		{name: "zero epochs", mutate: func(c *Config) { c.Epochs = -1 }, fragment: "epochs"},
		{name: "wrong loss weight count", mutate: func(c *Config) { c.LossWeights = []float32{1} }, fragment: "lossWeights"},
		{name: "zero max length", mutate: func(c *Config) { c.MaxLength = -5 }, fragment: "maxLength"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := base()
			testCase.mutate(cfg)
			err := cfg.Validate()
			if testCase.fragment == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), testCase.fragment) {
				t.Fatalf("expected error mentioning %q, got %v", testCase.fragment, err)
			}
		})
	}
}
