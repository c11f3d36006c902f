package cli

// LineReader reads one line of input after showing prompt. It returns io.EOF once the input
// is exhausted or the user asks to leave.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}
