// Package vocab loads term and character vocabularies with inverse document
// frequency weights from tab separated text. Loaded tables are read-only and
// safe to share across pipeline instances.
package vocab

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/viant/pairly/fs"
)

// Unknown is the reserved term substituted for out-of-vocabulary tokens.
const Unknown = "UNKNOWN"

// Vocabulary maps terms to their integer ids.
type Vocabulary map[string]int32

// IDF maps term ids to inverse document frequency weights.
type IDF map[int32]float64

// Load parses a term vocabulary with per-term document frequency statistics.
// Each line holds: termId, term, unused, docFreq, totalDocs, tab separated.
// The idf weight per term is log((0.5+totalDocs)/(0.5+docFreq)).
func Load(ctx context.Context, fsys fs.Service, URL string) (Vocabulary, IDF, error) {
	data, err := fsys.Download(ctx, URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vocabulary %v: %w", URL, err)
	}
	vocabulary := Vocabulary{}
	idf := IDF{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 5 {
			return nil, nil, fmt.Errorf("%w: %v:%d has %d fields, expected 5", ErrMalformedLine, URL, line, len(fields))
		}
		termID, err := parseInt(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v:%d invalid term id: %v", ErrMalformedLine, URL, line, err)
		}
		docFreq, err := parseInt(fields[3])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v:%d invalid doc freq: %v", ErrMalformedLine, URL, line, err)
		}
		totalDocs, err := parseInt(fields[4])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v:%d invalid total docs: %v", ErrMalformedLine, URL, line, err)
		}
		vocabulary[fields[1]] = termID
		idf[termID] = math.Log((0.5 + float64(totalDocs)) / (0.5 + float64(docFreq)))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to scan vocabulary %v: %w", URL, err)
	}
	if _, ok := vocabulary[Unknown]; !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrMissingUnknown, URL)
	}
	return vocabulary, idf, nil
}

// ID returns the id of a term, falling back to the reserved UNKNOWN entry.
func (v Vocabulary) ID(term string) int32 {
	if id, ok := v[term]; ok {
		return id
	}
	return v[Unknown]
}

func parseInt(value string) (int32, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(parsed), nil
}
