package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CoordReader prompts for 1-based row/column pairs and re-prompts until the
// input parses and lands on the board. NextMove returns zero-indexed
// coordinates, so the core only ever sees valid values.
type CoordReader struct {
	in   *bufio.Reader
	out  io.Writer
	size int
}

func NewCoordReader(in io.Reader, out io.Writer, size int) *CoordReader {
	return &CoordReader{in: bufio.NewReader(in), out: out, size: size}
}

// NextMove implements app.MoveSource. It only returns an error when the
// input stream ends; malformed input is recovered here.
func (c *CoordReader) NextMove() (int, int, error) {
	for {
		row, err := c.readNumber(fmt.Sprintf("Enter row (1-%d): ", c.size))
		if err != nil {
			return 0, 0, err
		}
		if row < 0 {
			continue // non-numeric, already reported
		}
		col, err := c.readNumber(fmt.Sprintf("Enter column (1-%d): ", c.size))
		if err != nil {
			return 0, 0, err
		}
		if col < 0 {
			continue
		}
		if row >= c.size || col >= c.size {
			fmt.Fprintln(c.out, "Invalid coordinates. Try again.")
			continue
		}
		return row, col, nil
	}
}

// readNumber reads one 1-based value and converts it to zero-indexed.
// It returns -1 for non-numeric or non-positive input and an error only
// when the stream is exhausted.
func (c *CoordReader) readNumber(prompt string) (int, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("read input: %w", err)
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || n < 1 {
		fmt.Fprintf(c.out, "Invalid input. Enter a number 1-%d.\n", c.size)
		return -1, nil
	}
	return n - 1, nil
}

// Confirm asks a yes/no question; anything but y/Y counts as no.
func (c *CoordReader) Confirm(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read input: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
