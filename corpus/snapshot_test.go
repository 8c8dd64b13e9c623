package corpus

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/viant/bintly"
	"github.com/viant/pairly/fs"
)

func TestSnapshot_EncodeDecodeBinary(t *testing.T) {
	original := &Snapshot{
		Fingerprint: 42,
		Answers: []*Answer{
			{ID: "A1", Length: 2, Vector: []int32{50, 101}, Tokens: []string{"the", "cat"}},
		},
		Examples: []*Example{
			{
				QuestionID:     "Q1",
				QuestionLength: 3,
				QuestionVector: []int32{50, 102, 103},
				AnswerID:       "A1",
				AnswerLength:   2,
				AnswerVector:   []int32{50, 101},
				Label:          1,
				QuestionTokens: []string{"the", "dog", "runs"},
				AnswerTokens:   []string{"the", "cat"},
			},
		},
	}

	writers := bintly.NewWriters()
	writer := writers.Get()
	defer writers.Put(writer)
	if err := original.EncodeBinary(writer); err != nil {
		t.Fatalf("EncodeBinary failed: %v", err)
	}

	readers := bintly.NewReaders()
	reader := readers.Get()
	defer readers.Put(reader)
	if err := reader.FromBytes(writer.Bytes()); err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	decoded := &Snapshot{}
	if err := decoded.DecodeBinary(reader); err != nil {
		t.Fatalf("DecodeBinary failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("decoded snapshot mismatch:\ngot  %+v\nwant %+v", decoded, original)
	}
}

func TestLoadOrBuild(t *testing.T) {
	dir := t.TempDir()
	answersURL := writeFile(t, dir, "answers.txt", "A1\tthe cat runs\nA2\tthe dog\n")
	pairsURL := writeFile(t, dir, "pairs.txt", "Q1\tthe dog runs\tA2\tA1\n")
	snapshotURL := filepath.Join(dir, "snapshot.bin")
	fsys := fs.NewAFS()
	ctx := context.Background()

	pool, examples, err := LoadOrBuild(ctx, fsys, snapshotURL, answersURL, pairsURL, testVocabulary, 5)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if pool.Size() != 2 || len(examples) != 2 {
		t.Fatalf("expected 2 answers and 2 examples, got %d/%d", pool.Size(), len(examples))
	}
	if _, err := os.Stat(snapshotURL); err != nil {
		t.Fatalf("expected snapshot to be persisted: %v", err)
	}

	// Second load is served from the snapshot.
	pool2, examples2, err := LoadOrBuild(ctx, fsys, snapshotURL, answersURL, pairsURL, testVocabulary, 5)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if pool2.Size() != pool.Size() || len(examples2) != len(examples) {
		t.Fatalf("snapshot reload diverged: %d/%d answers, %d/%d examples", pool2.Size(), pool.Size(), len(examples2), len(examples))
	}
	if examples2[0].QuestionID != "Q1" || examples2[0].Label != 0 || examples2[1].Label != 1 {
		t.Errorf("snapshot reload lost example content: %+v", examples2)
	}

	// Changing a source invalidates the snapshot and rebuilds.
	if err := os.WriteFile(pairsURL, []byte("Q1\tthe dog runs\tNA\tA1\n"), 0o644); err != nil {
		t.Fatalf("rewrite pairs: %v", err)
	}
	_, examples3, err := LoadOrBuild(ctx, fsys, snapshotURL, answersURL, pairsURL, testVocabulary, 5)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(examples3) != 1 || examples3[0].Label != 0 {
		t.Fatalf("expected rebuild with 1 negative example, got %+v", examples3)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	dir := t.TempDir()
	URL := writeFile(t, dir, "data.txt", "A1\tthe cat\n")
	fsys := fs.NewAFS()
	ctx := context.Background()
	first, err := Fingerprint(ctx, fsys, URL)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	second, err := Fingerprint(ctx, fsys, URL)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if first != second {
		t.Errorf("fingerprint not deterministic: %v vs %v", first, second)
	}
	if err := os.WriteFile(URL, []byte("A1\tthe dog\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	changed, err := Fingerprint(ctx, fsys, URL)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if changed == first {
		t.Error("fingerprint unchanged after content change")
	}
}
