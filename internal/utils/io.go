package utils

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ReadLine reads one line and strips the trailing "\n" or "\r\n".
// A final line without a newline is returned as is; io.EOF is only
// returned when nothing at all was read.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
