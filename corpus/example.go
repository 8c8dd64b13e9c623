package corpus

import (
	"github.com/viant/bintly"
)

// Example is one labeled question/answer pair. Examples built from the same
// question line share the question vector and token slices.
type Example struct {
	QuestionID     string
	QuestionLength int32
	QuestionVector []int32
	AnswerID       string
	AnswerLength   int32
	AnswerVector   []int32
	Label          float32
	QuestionTokens []string
	AnswerTokens   []string
}

// Positive reports whether the example is a relevant pair.
func (e *Example) Positive() bool {
	return e.Label > 0
}

// EncodeBinary encodes the example to a binary stream
func (e *Example) EncodeBinary(stream *bintly.Writer) error {
	stream.String(e.QuestionID)
	stream.Int32(e.QuestionLength)
	encodeInt32s(stream, e.QuestionVector)
	stream.String(e.AnswerID)
	stream.Int32(e.AnswerLength)
	encodeInt32s(stream, e.AnswerVector)
	stream.Float32(e.Label)
	encodeStrings(stream, e.QuestionTokens)
	encodeStrings(stream, e.AnswerTokens)
	return nil
}

// DecodeBinary decodes the example from a binary stream
func (e *Example) DecodeBinary(stream *bintly.Reader) error {
	stream.String(&e.QuestionID)
	stream.Int32(&e.QuestionLength)
	e.QuestionVector = decodeInt32s(stream)
	stream.String(&e.AnswerID)
	stream.Int32(&e.AnswerLength)
	e.AnswerVector = decodeInt32s(stream)
	stream.Float32(&e.Label)
	e.QuestionTokens = decodeStrings(stream)
	e.AnswerTokens = decodeStrings(stream)
	return nil
}

func encodeInt32s(stream *bintly.Writer, values []int32) {
	stream.Int32(int32(len(values)))
	for _, value := range values {
		stream.Int32(value)
	}
}

func decodeInt32s(stream *bintly.Reader) []int32 {
	var size int32
	stream.Int32(&size)
	values := make([]int32, size)
	for i := range values {
		stream.Int32(&values[i])
	}
	return values
}

func encodeStrings(stream *bintly.Writer, values []string) {
	stream.Int32(int32(len(values)))
	for _, value := range values {
		stream.String(value)
	}
}

func decodeStrings(stream *bintly.Reader) []string {
	var size int32
	stream.Int32(&size)
	values := make([]string, size)
	for i := range values {
		stream.String(&values[i])
	}
	return values
}
