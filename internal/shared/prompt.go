package shared

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadLine reads one line from r with surrounding whitespace removed.
//
// A final line without a trailing newline is returned normally; EOF with nothing read is [ErrInputClosed].
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
