// Package input defines where operations get their answers from.
//
// Every workflow in this application is a chain of question/answer pairs:
// "Enter name:", "Enter salary:", "Delete this record? (1 = yes, 2 = no)".
// Rather than reading os.Stdin directly, the record types and handlers ask
// a Reader for the next line. The console uses a Scanner; tests use Lines
// so whole workflows can be scripted without a terminal.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader yields the next line of user input.
//
// ReadLine shows prompt (if the implementation has somewhere to show it)
// and returns the line without its trailing newline. io.EOF is returned
// once no more input is available.
type Reader interface {
	ReadLine(prompt string) (string, error)
}

// MaxLineLength caps how many bytes of one answer a Scanner keeps. Longer
// lines are cut at the limit and the rest of the line is discarded, so one
// oversized answer never desynchronizes the answers that follow it.
const MaxLineLength = 1 << 20

// ─────────────────────────────────────────────────────────────────────────────
// Scanner reads lines from an io.Reader and writes prompts to an io.Writer.
// This is the implementation wired to os.Stdin / os.Stdout in main.go.
//
// It reads with bufio.Reader rather than bufio.Scanner: a Scanner fails
// permanently on a token longer than its buffer, which would end the whole
// session over a single over-long answer.
// ─────────────────────────────────────────────────────────────────────────────
type Scanner struct {
	reader  *bufio.Reader
	out     io.Writer
	maxLine int
}

// NewScanner returns a Scanner over r. Prompts go to w; pass io.Discard to
// suppress them.
func NewScanner(r io.Reader, w io.Writer) *Scanner {
	return &Scanner{
		reader:  bufio.NewReader(r),
		out:     w,
		maxLine: MaxLineLength,
	}
}

// ReadLine implements Reader. A final line without a trailing newline is
// still returned; io.EOF comes only once nothing is left.
func (s *Scanner) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}

	var (
		line []byte
		read int
	)
	for {
		chunk, err := s.reader.ReadSlice('\n')
		read += len(chunk)
		if room := s.maxLine - len(line); room > 0 {
			line = append(line, chunk[:min(len(chunk), room)]...)
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read == 0 {
				return "", io.EOF
			}
		default:
			return "", fmt.Errorf("ReadLine: read: %w", err)
		}
		break
	}

	// Windows terminals leave a \r behind.
	text := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// Script is a Reader backed by a fixed list of answers.
type Script struct {
	lines []string
	pos   int

	// Prompts records every prompt that was asked, in order.
	Prompts []string
}

// Lines returns a Script that answers with lines, one per ReadLine call.
func Lines(lines ...string) *Script {
	return &Script{lines: lines}
}

// ReadLine implements Reader.
func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining reports how many scripted answers have not been consumed.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}

// Ask reads one answer and folds end-of-input and read errors into "",
// which every caller treats as "keep the current value".
func Ask(in Reader, prompt string) string {
	line, err := in.ReadLine(prompt)
	if err != nil {
		return ""
	}
	return line
}
