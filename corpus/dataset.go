package corpus

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/pairly/cache"
	"github.com/viant/pairly/encode"
	"github.com/viant/pairly/fs"
	"github.com/viant/pairly/vocab"
)

// noAnswers marks an empty positive or negative id list in the pair file.
const noAnswers = "NA"

// LoadExamples parses a tab separated pair file (questionId, questionText,
// positiveIds, negativeIds) into a flat list of labeled examples. Id lists
// are pipe delimited, with the literal NA standing for none. Per question,
// negatives are appended before positives, preserving source order. A
// referenced answer id absent from the pool fails with ErrMissingAnswer.
func LoadExamples(ctx context.Context, fsys fs.Service, URL string, vocabulary vocab.Vocabulary, maxLen int, pool *cache.Map[string, Answer]) ([]*Example, error) {
	data, err := fsys.Download(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load examples %v: %w", URL, err)
	}
	var dataset []*Example
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
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: %v:%d has %d fields, expected 4", ErrMalformedPairLine, URL, line, len(fields))
		}
		questionID := fields[0]
		tokens := strings.Split(fields[1], " ")
		if len(tokens) > maxLen {
			tokens = tokens[:maxLen]
		}
		length, vec := encode.Words(tokens, vocabulary)

		appendExamples := func(ids string, label float32) error {
			if ids == noAnswers {
				return nil
			}
			for _, answerID := range strings.Split(ids, "|") {
				answer, ok := pool.Get(answerID)
				if !ok {
					return fmt.Errorf("%w: %v referenced by question %v (%v:%d)", ErrMissingAnswer, answerID, questionID, URL, line)
				}
				dataset = append(dataset, &Example{
					QuestionID:     questionID,
					QuestionLength: length,
					QuestionVector: vec,
					AnswerID:       answerID,
					AnswerLength:   answer.Length,
					AnswerVector:   answer.Vector,
					Label:          label,
					QuestionTokens: tokens,
					AnswerTokens:   answer.Tokens,
				})
			}
			return nil
		}
		if err := appendExamples(fields[3], 0.0); err != nil {
			return nil, err
		}
		if err := appendExamples(fields[2], 1.0); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan examples %v: %w", URL, err)
	}
	return dataset, nil
}
