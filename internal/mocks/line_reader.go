package mocks

import (
	"io"
)

// LineReader replays scripted lines and records the prompts it was asked to show.
type LineReader struct {
	Lines   []string
	Prompts []string
}

func NewLineReader(lines ...string) *LineReader {
	return &LineReader{Lines: lines}
}

func (r *LineReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)

	if len(r.Lines) == 0 {
		return "", io.EOF
	}

	line := r.Lines[0]
	r.Lines = r.Lines[1:]
	return line, nil
}
