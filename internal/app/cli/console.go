package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrReadInput = errors.New("error reading input")
	ErrNoOptions = errors.New("no options to select from")
)

// Console reads operator input line by line and writes prompts and results.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// ReadLine shows prompt and returns the next line including its newline.
// A final line without newline is returned as is; EOF on an empty line is an error.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.Println(prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return line, nil
}

// Select lists options numbered from 1 and returns the zero-based index of the chosen one.
func (c *Console) Select(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	var sb strings.Builder
	sb.WriteString(prompt)
	for i, opt := range options {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, opt)
	}

	for {
		line, err := c.ReadLine(sb.String())
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		c.Printf("* please choose a number between 1 and %d\n", len(options))
	}
}

// ask re-prompts until parse accepts the input. Only read failures are returned.
func ask[T any](c *Console, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		c.Println(err)
	}
}
