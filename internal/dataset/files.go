package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single key when reading a dataset file.
const maxLineSize = 1 << 20

// WriteLines writes one key per line to path, creating parent directories.
func WriteLines(path string, keys []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot open file %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, k := range keys {
		w.WriteString(k)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ReadLines reads a newline-delimited dataset. A trailing carriage return on
// each line is dropped.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		keys = append(keys, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return keys, nil
}

// Validate checks that every key uses only Alphabet and has a length within
// [minLen, maxLen].
func Validate(keys []string, minLen, maxLen int) error {
	for i, k := range keys {
		if len(k) < minLen || len(k) > maxLen {
			return fmt.Errorf("key %d has length %d, want [%d, %d]", i, len(k), minLen, maxLen)
		}
		if j := strings.IndexFunc(k, func(r rune) bool {
			return r > 0x7f || strings.IndexByte(Alphabet, byte(r)) < 0
		}); j >= 0 {
			return fmt.Errorf("key %d has byte %q at %d outside the alphabet", i, k[j], j)
		}
	}
	return nil
}
