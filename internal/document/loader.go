package document

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// maxLineBytes bounds a single input line. Lines longer than this indicate
// binary or pathological input rather than viewable text.
const maxLineBytes = 1024 * 1024

// ReadFile reads the file at path into newline-stripped, decoded lines.
// Both LF and CRLF line endings are accepted. The returned error wraps the
// underlying OS error for open and read failures.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("document: %s: line %d is not valid UTF-8", path, len(lines)+1)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("document: reading %s: %w", path, err)
	}

	return lines, nil
}
