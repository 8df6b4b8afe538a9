// Package tsv converts between tab separated files and spreadsheet value grids.
package tsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var encodings = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"macintosh":    charmap.Macintosh,
}

func Write(f io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = clean(v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// Read parses a TSV file into rows. The encoding is either blank/"utf-8" or one
// of the legacy single byte encodings e.g. "windows-1252".
func Read(f io.Reader, enc string) ([][]string, error) {
	switch e := strings.ToLower(strings.TrimSpace(enc)); e {
	case "", "utf-8", "utf8":

	default:
		if codec, ok := encodings[e]; !ok {
			return nil, fmt.Errorf("Unsupported TSV file encoding '%s'", enc)
		} else {
			f = codec.NewDecoder().Reader(f)
		}
	}

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	return records, nil
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
