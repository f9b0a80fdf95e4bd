package sqlwriter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// CountLines counts the lines of the file at path. A last line without a
// trailing newline is counted too.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	buf := make([]byte, 32*1024)
	count := 0
	last := byte('\n')
	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read %q: %w", path, err)
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}
