package prompt

import (
	// Stdlib
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console reads answers from an input stream line by line
// and writes questions into an output stream.
//
// All the prompts of a program are supposed to share a single Console,
// the reader is buffered and would otherwise swallow lines
// belonging to the following prompts.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{bufio.NewReader(in), out}
}

// Stdio returns a Console connected to the standard streams.
func Stdio() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

func (console *Console) Print(a ...interface{}) error {
	_, err := fmt.Fprint(console.out, a...)
	return err
}

func (console *Console) Println(a ...interface{}) error {
	_, err := fmt.Fprintln(console.out, a...)
	return err
}

// ReadLine reads a single line with the line terminator stripped.
// A last line not terminated by a newline is still returned as a line,
// io.EOF is only returned when there is nothing left to read.
func (console *Console) ReadLine() (string, error) {
	line, err := console.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Prompt prints msg and waits for a line of input.
func (console *Console) Prompt(msg string) (string, error) {
	if err := console.Print(msg); err != nil {
		return "", err
	}
	return console.ReadLine()
}

// IsAffirmative returns true for "Y" and "y" only.
// The check is exact, no trimming or case folding takes place.
func IsAffirmative(answer string) bool {
	switch answer {
	case "Y", "y":
		return true
	default:
		return false
	}
}
