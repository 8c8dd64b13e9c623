package vocab

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/pairly/fs"
)

// CharVocabulary maps single characters to their integer ids.
type CharVocabulary map[string]int32

// LoadChars parses a character vocabulary. Each line holds: charId, character,
// tab separated. Characters absent from the vocabulary encode as 0.
func LoadChars(ctx context.Context, fsys fs.Service, URL string) (CharVocabulary, error) {
	data, err := fsys.Download(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load char vocabulary %v: %w", URL, err)
	}
	chars := CharVocabulary{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %v:%d has %d fields, expected 2", ErrMalformedLine, URL, line, len(fields))
		}
		charID, err := parseInt(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v:%d invalid char id: %v", ErrMalformedLine, URL, line, err)
		}
		chars[fields[1]] = charID
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan char vocabulary %v: %w", URL, err)
	}
	return chars, nil
}
