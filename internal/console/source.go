package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource supplies one line of input per call. ReadLine returns io.EOF
// when no more input will come.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// ReaderSource reads lines from an io.Reader.
type ReaderSource struct {
	reader *bufio.Reader
	echo   io.Writer
}

var _ LineSource = (*ReaderSource)(nil)

// NewReaderSource reads lines from r, printing the prompt to echo before
// each read. A nil echo suppresses the prompt, as for piped input.
func NewReaderSource(r io.Reader, echo io.Writer) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(r), echo: echo}
}

// ReadLine implements LineSource. A final line without a newline is
// returned before io.EOF.
func (s *ReaderSource) ReadLine(prompt string) (string, error) {
	if s.echo != nil && prompt != "" {
		if _, err := io.WriteString(s.echo, prompt); err != nil {
			return "", err
		}
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
