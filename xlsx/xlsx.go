// Package xlsx exports spreadsheet values to a local Excel workbook.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/uhppoted/uhppoted-sheets/address"
)

const DEFAULT_SHEET = "Sheet1"

// Write stores the rows in a single worksheet workbook, starting at cell A1.
func Write(w io.Writer, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	if sheet == "" {
		sheet = DEFAULT_SHEET
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != DEFAULT_SHEET {
		if err := f.SetSheetName(DEFAULT_SHEET, sheet); err != nil {
			return fmt.Errorf("invalid worksheet name '%s' (%w)", sheet, err)
		}
	}

	for i, row := range rows {
		cell, err := address.FormatCell(i+1, 1)
		if err != nil {
			return err
		}

		record := make([]any, len(row))
		for j, v := range row {
			record[j] = v
		}

		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return fmt.Errorf("error writing row %v (%w)", i+1, err)
		}
	}

	_, err := f.WriteTo(w)

	return err
}
