package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/simpleos/simpleos-cli/internal/errors"
)

var plainTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}",
	Valid:   "{{ . }}",
	Invalid: "{{ . }}",
	Success: "{{ . }}",
}

// PromptReader reads lines from a terminal with line editing.
type PromptReader struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (r PromptReader) ReadLine(prompt string) (string, error) {
	p := promptui.Prompt{
		Label:     prompt,
		Templates: plainTemplates,
		Stdin:     r.Stdin,
		Stdout:    r.Stdout,
	}

	line, err := p.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}

	return line, err
}

// ScannerReader reads lines from a pipe or a script file, echoing prompts to out. Lines have no
// length limit; the engine bounds what it stores.
type ScannerReader struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{reader: bufio.NewReader(in), out: out}
}

func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.reader.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		// A final line without a terminator is still a line.
		if line == "" {
			return "", io.EOF
		}
	case err != nil:
		return "", errors.Wrap(err, "unable to read input")
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
