// Package loader is the IO boundary the core has none of: it turns a
// file path or an io.Reader into the ordered slice of text lines the
// parser expects, splitting on newlines and stripping the line-ending
// itself. No character that reaches the parser is rejected here — any
// byte outside the recognized set is the parser's concern, not the
// loader's; the loader's only job is getting bytes into lines.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Lines reads r to completion and splits it into text lines. A trailing
// newline does not produce a trailing empty line; every other blank line
// is preserved since it still occupies a row in the grid.
func Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading lines: %w", err)
	}

	return lines, nil
}

// File opens path and reads it as text lines via Lines.
func File(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: opening %s: %w", path, err)
	}
	defer f.Close()

	return Lines(f)
}
