// Package corpus loads the candidate answer pool and labeled question/answer
// examples, pre-encoded against a shared vocabulary. The pool and example
// list are built once at startup and held in memory for the run.
package corpus

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/viant/bintly"
	"github.com/viant/pairly/cache"
	"github.com/viant/pairly/encode"
	"github.com/viant/pairly/fs"
	"github.com/viant/pairly/vocab"
)

// Answer is a pre-encoded candidate answer.
type Answer struct {
	ID     string
	Length int32
	Vector []int32
	Tokens []string
}

// LoadAnswers parses a tab separated answer pool (answerId, answerText) into
// a pool keyed by answer id. Text is split on single spaces and truncated to
// maxLen tokens before encoding. A line without exactly two fields is logged
// and recorded with UNKNOWN text rather than rejected; bad answer text is
// tolerable, a dangling id reference downstream is not.
func LoadAnswers(ctx context.Context, fsys fs.Service, URL string, vocabulary vocab.Vocabulary, maxLen int) (*cache.Map[string, Answer], error) {
	data, err := fsys.Download(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers %v: %w", URL, err)
	}
	pool := cache.NewMap[string, Answer]()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		text := ""
		if len(fields) != 2 {
			log.Printf("wrong answer line: %v", line)
			text = vocab.Unknown
		} else {
			text = fields[1]
		}
		tokens := strings.Split(text, " ")
		if len(tokens) > maxLen {
			tokens = tokens[:maxLen]
		}
		length, vec := encode.Words(tokens, vocabulary)
		pool.Set(fields[0], &Answer{ID: fields[0], Length: length, Vector: vec, Tokens: tokens})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan answers %v: %w", URL, err)
	}
	return pool, nil
}

// EncodeBinary encodes the answer to a binary stream
func (a *Answer) EncodeBinary(stream *bintly.Writer) error {
	stream.String(a.ID)
	stream.Int32(a.Length)
	encodeInt32s(stream, a.Vector)
	encodeStrings(stream, a.Tokens)
	return nil
}

// DecodeBinary decodes the answer from a binary stream
func (a *Answer) DecodeBinary(stream *bintly.Reader) error {
	stream.String(&a.ID)
	stream.Int32(&a.Length)
	a.Vector = decodeInt32s(stream)
	a.Tokens = decodeStrings(stream)
	return nil
}
