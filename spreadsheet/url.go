package spreadsheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uhppoted/uhppoted-sheets/address"
)

var (
	urlRE = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
	idRE  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ParseURL extracts the spreadsheet ID from a Google Sheets URL. A bare
// spreadsheet ID is returned as is.
func ParseURL(url string) (string, error) {
	url = strings.TrimSpace(url)

	if match := urlRE.FindStringSubmatch(url); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if idRE.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("%w: invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", address.ErrInvalidInput)
}
