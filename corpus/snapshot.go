package corpus

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/viant/bintly"
	"github.com/viant/pairly/cache"
	"github.com/viant/pairly/fs"
	"github.com/viant/pairly/vocab"
)

// Snapshot holds a pre-encoded answer pool and example list together with a
// fingerprint of the source files it was built from. It avoids re-encoding a
// large corpus on every cold start.
type Snapshot struct {
	Fingerprint uint64
	Answers     []*Answer
	Examples    []*Example
}

// Fingerprint hashes the content of the given source URLs into a single
// value used for snapshot invalidation.
func Fingerprint(ctx context.Context, fsys fs.Service, URLs ...string) (uint64, error) {
	sums := make([]byte, 0, 8*len(URLs))
	for _, URL := range URLs {
		data, err := fsys.Download(ctx, URL)
		if err != nil {
			return 0, fmt.Errorf("failed to fingerprint %v: %w", URL, err)
		}
		sum, err := cache.Hash(data)
		if err != nil {
			return 0, err
		}
		sums = binary.LittleEndian.AppendUint64(sums, sum)
	}
	return cache.Hash(sums)
}

// EncodeBinary encodes the snapshot to a binary stream
func (s *Snapshot) EncodeBinary(stream *bintly.Writer) error {
	stream.Uint64(s.Fingerprint)
	stream.Int32(int32(len(s.Answers)))
	for _, answer := range s.Answers {
		if err := answer.EncodeBinary(stream); err != nil {
			return err
		}
	}
	stream.Int32(int32(len(s.Examples)))
	for _, example := range s.Examples {
		if err := example.EncodeBinary(stream); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBinary decodes the snapshot from a binary stream
func (s *Snapshot) DecodeBinary(stream *bintly.Reader) error {
	stream.Uint64(&s.Fingerprint)
	var size int32
	stream.Int32(&size)
	s.Answers = make([]*Answer, size)
	for i := range s.Answers {
		s.Answers[i] = &Answer{}
		if err := s.Answers[i].DecodeBinary(stream); err != nil {
			return err
		}
	}
	stream.Int32(&size)
	s.Examples = make([]*Example, size)
	for i := range s.Examples {
		s.Examples[i] = &Example{}
		if err := s.Examples[i].DecodeBinary(stream); err != nil {
			return err
		}
	}
	return nil
}

// SaveSnapshot persists a snapshot at the given URL.
func SaveSnapshot(ctx context.Context, fsys fs.Service, URL string, snapshot *Snapshot) error {
	writers := bintly.NewWriters()
	writer := writers.Get()
	defer writers.Put(writer)
	if err := snapshot.EncodeBinary(writer); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := fsys.Upload(ctx, URL, writer.Bytes()); err != nil {
		return fmt.Errorf("failed to upload snapshot %v: %w", URL, err)
	}
	return nil
}

// LoadSnapshot loads a snapshot from the given URL and verifies it against
// the expected fingerprint, returning ErrStaleSnapshot on mismatch.
func LoadSnapshot(ctx context.Context, fsys fs.Service, URL string, fingerprint uint64) (*Snapshot, error) {
	data, err := fsys.Download(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %v: %w", URL, err)
	}
	readers := bintly.NewReaders()
	reader := readers.Get()
	defer readers.Put(reader)
	if err := reader.FromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %v: %w", URL, err)
	}
	snapshot := &Snapshot{}
	if err := snapshot.DecodeBinary(reader); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %v: %w", URL, err)
	}
	if snapshot.Fingerprint != fingerprint {
		return nil, fmt.Errorf("%w: %v", ErrStaleSnapshot, URL)
	}
	return snapshot, nil
}

// LoadOrBuild returns the answer pool and example list for the given sources,
// reusing a snapshot at snapshotURL when its fingerprint still matches the
// source files. A fresh build is persisted best effort; a failed upload does
// not fail the load.
func LoadOrBuild(ctx context.Context, fsys fs.Service, snapshotURL, answersURL, pairsURL string, vocabulary vocab.Vocabulary, maxLen int) (*cache.Map[string, Answer], []*Example, error) {
	if snapshotURL == "" {
		return build(ctx, fsys, answersURL, pairsURL, vocabulary, maxLen)
	}
	fingerprint, err := Fingerprint(ctx, fsys, answersURL, pairsURL)
	if err != nil {
		return nil, nil, err
	}
	if exists, _ := fsys.Exists(ctx, snapshotURL); exists {
		if snapshot, err := LoadSnapshot(ctx, fsys, snapshotURL, fingerprint); err == nil {
			pool := cache.NewMap[string, Answer]()
			for _, answer := range snapshot.Answers {
				pool.Set(answer.ID, answer)
			}
			return pool, snapshot.Examples, nil
		}
	}
	pool, examples, err := build(ctx, fsys, answersURL, pairsURL, vocabulary, maxLen)
	if err != nil {
		return nil, nil, err
	}
	snapshot := &Snapshot{Fingerprint: fingerprint, Answers: pool.Values(), Examples: examples}
	_ = SaveSnapshot(ctx, fsys, snapshotURL, snapshot)
	return pool, examples, nil
}

func build(ctx context.Context, fsys fs.Service, answersURL, pairsURL string, vocabulary vocab.Vocabulary, maxLen int) (*cache.Map[string, Answer], []*Example, error) {
	pool, err := LoadAnswers(ctx, fsys, answersURL, vocabulary, maxLen)
	if err != nil {
		return nil, nil, err
	}
	examples, err := LoadExamples(ctx, fsys, pairsURL, vocabulary, maxLen, pool)
	if err != nil {
		return nil, nil, err
	}
	return pool, examples, nil
}
