package address

import (
	"fmt"
	"regexp"
	"strings"
)

// Range is a rectangular region in A1 notation, optionally qualified by a sheet
// title. An empty To denotes a single cell.
type Range struct {
	Sheet string
	From  string
	To    string
}

var rangeRE = regexp.MustCompile(`^(?:('(?:[^']|'')+'|[^'!]+)!)?([A-Z]+[0-9]+)(?::([A-Z]+[0-9]+))?$`)
var unquotedRE = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ParseRange parses a range string of the form 'Sheet!A1:B2', 'A1:B2' or 'A1'.
// Quoted sheet titles e.g. 'My Sheet'!A1 are unquoted.
func ParseRange(s string) (Range, error) {
	match := rangeRE.FindStringSubmatch(s)
	if match == nil {
		return Range{}, fmt.Errorf("%w: invalid range '%s'", ErrInvalidInput, s)
	}

	sheet := match[1]
	if strings.HasPrefix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	r := Range{
		Sheet: sheet,
		From:  match[2],
		To:    match[3],
	}

	for _, cell := range []string{r.From, r.To} {
		if cell != "" {
			if _, _, err := ParseCell(cell); err != nil {
				return Range{}, err
			}
		}
	}

	return r, nil
}

// String formats the range in A1 notation, quoting the sheet title if it contains
// anything other than letters, digits and underscores.
func (r Range) String() string {
	var b strings.Builder

	if r.Sheet != "" {
		if unquotedRE.MatchString(r.Sheet) {
			b.WriteString(r.Sheet)
		} else {
			fmt.Fprintf(&b, "'%s'", strings.ReplaceAll(r.Sheet, "'", "''"))
		}
		b.WriteString("!")
	}

	b.WriteString(r.From)
	if r.To != "" && r.To != r.From {
		b.WriteString(":")
		b.WriteString(r.To)
	}

	return b.String()
}
