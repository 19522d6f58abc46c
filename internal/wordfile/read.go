// Package wordfile reads and writes wordlist files. Reading is
// encoding-tolerant: invalid byte sequences are dropped rather than failing
// the whole file.
package wordfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines reads non-empty trimmed lines from r. Invalid UTF-8 sequences
// are stripped from each line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	return lines, nil
}

// ReadFile reads a wordlist file into trimmed, non-empty lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return lines, nil
}
