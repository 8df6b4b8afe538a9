package spreadsheet

import (
	"fmt"
	"regexp"
	"strconv"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-sheets/address"
)

var colorRE = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// ParseColor converts an RGB hex colour e.g. "#ffcc00" to a Sheets colour.
func ParseColor(s string) (*sheets.Color, error) {
	match := colorRE.FindStringSubmatch(s)
	if len(match) < 4 {
		return nil, fmt.Errorf("%w: invalid colour '%s' - expected something like '#ffcc00'", address.ErrInvalidInput, s)
	}

	rgb := [3]float64{}
	for i := range rgb {
		v, _ := strconv.ParseUint(match[i+1], 16, 8)
		rgb[i] = float64(v) / 255.0
	}

	return &sheets.Color{
		Red:             rgb[0],
		Green:           rgb[1],
		Blue:            rgb[2],
		Alpha:           1.0,
		ForceSendFields: []string{"Red", "Green", "Blue"},
	}, nil
}
