// Package address converts between spreadsheet column numbers, column letters
// and A1-style cell addresses.
package address

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrPreconditionViolation = errors.New("precondition violation")
	ErrNumericOverflow       = errors.New("numeric overflow")
)

var cellRE = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// ColumnLetters returns the bijective base-26 letters for a 1-based column number,
// e.g. 1 -> "A", 26 -> "Z", 27 -> "AA".
func ColumnLetters(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: column %v is not a positive integer", ErrPreconditionViolation, n)
	}

	letters := []byte{}
	for n > 0 {
		remainder := (n - 1) % 26
		letters = append([]byte{byte('A' + remainder)}, letters...)
		n = (n - remainder - 1) / 26
	}

	return string(letters), nil
}

// ColumnNumber returns the 1-based column number for a run of column letters.
func ColumnNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty column letters", ErrInvalidInput)
	}

	n := 0
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: invalid column letters '%s'", ErrInvalidInput, s)
		}

		digit := int(c-'A') + 1
		if n > (math.MaxInt-digit)/26 {
			return 0, fmt.Errorf("%w: column '%s'", ErrNumericOverflow, s)
		}

		n = 26*n + digit
	}

	return n, nil
}

// FormatCell returns the A1-style address for a 1-based row and column. Row and
// column numbers less than 1 are a caller error and are reported as
// ErrPreconditionViolation.
func FormatCell(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("%w: row and column must be positive integers (row:%v col:%v)", ErrPreconditionViolation, row, col)
	}

	letters, err := ColumnLetters(col)
	if err != nil {
		return "", err
	}

	return letters + strconv.Itoa(row), nil
}

// MustFormatCell is like FormatCell but panics if row or col is less than 1.
func MustFormatCell(row, col int) string {
	cell, err := FormatCell(row, col)
	if err != nil {
		panic(err)
	}

	return cell
}

// ParseCell parses an A1-style address e.g. "AB123" into its 1-based row and
// column numbers.
func ParseCell(s string) (int, int, error) {
	match := cellRE.FindStringSubmatch(s)
	if len(match) < 3 {
		return 0, 0, fmt.Errorf("%w: invalid cell address '%s'", ErrInvalidInput, s)
	}

	col, err := ColumnNumber(match[1])
	if err != nil {
		return 0, 0, err
	}

	row, err := strconv.Atoi(match[2])
	if errors.Is(err, strconv.ErrRange) {
		return 0, 0, fmt.Errorf("%w: row '%s'", ErrNumericOverflow, match[2])
	} else if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid row '%s'", ErrInvalidInput, match[2])
	} else if row < 1 {
		return 0, 0, fmt.Errorf("%w: invalid cell address '%s' (row must be positive)", ErrInvalidInput, s)
	}

	return row, col, nil
}

// FormatSpan returns the address span covering (row,col) to (row2,col2), e.g. "A2:C2".
// A span that starts and ends on the same cell is formatted as that cell.
func FormatSpan(row, col, row2, col2 int) (string, error) {
	from, err := FormatCell(row, col)
	if err != nil {
		return "", err
	}

	if row2 == row && col2 == col {
		return from, nil
	}

	to, err := FormatCell(row2, col2)
	if err != nil {
		return "", err
	}

	return from + ":" + to, nil
}
