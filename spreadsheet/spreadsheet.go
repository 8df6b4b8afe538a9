// Package spreadsheet implements a thin client for reading and updating a
// single Google Sheets spreadsheet.
package spreadsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-sheets/address"
)

// Spreadsheet issues read and update requests against one spreadsheet. It holds
// no mutable state and is safe for concurrent use. Concurrent writes to
// overlapping ranges are not serialised.
type Spreadsheet struct {
	service Service
	id      string
}

func NewSpreadsheet(service Service, id string) *Spreadsheet {
	return &Spreadsheet{
		service: service,
		id:      id,
	}
}

func (s *Spreadsheet) ID() string {
	return s.id
}

// SheetTitle returns the title of the worksheet with the sheet ID, or false if
// there is no such worksheet.
func (s *Spreadsheet) SheetTitle(ctx context.Context, id int64) (string, bool, error) {
	spreadsheet, err := s.service.Get(ctx, s.id)
	if err != nil {
		return "", false, transport("get sheet title", err)
	}

	if spreadsheet == nil {
		return "", false, nil
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.SheetId == id {
			return sheet.Properties.Title, true, nil
		}
	}

	return "", false, nil
}

// SheetID returns the sheet ID of the worksheet with the title, or false if
// there is no such worksheet.
func (s *Spreadsheet) SheetID(ctx context.Context, title string) (int64, bool, error) {
	spreadsheet, err := s.service.Get(ctx, s.id)
	if err != nil {
		return 0, false, transport("get sheet ID", err)
	}

	if spreadsheet == nil {
		return 0, false, nil
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, true, nil
		}
	}

	return 0, false, nil
}

// Read returns the values in the range e.g. 'Sheet1!A1:C10'. An empty range
// returns an empty slice.
func (s *Spreadsheet) Read(ctx context.Context, area string) ([][]string, error) {
	response, err := s.service.GetValues(ctx, s.id, area)
	if err != nil {
		return nil, transport("read range", err)
	}

	rows := [][]string{}
	for _, row := range response.Values {
		record := make([]string, len(row))
		for i, v := range row {
			if v != nil {
				record[i] = fmt.Sprintf("%v", v)
			}
		}

		rows = append(rows, record)
	}

	return rows, nil
}

// Write overwrites the range with the values, verbatim.
func (s *Spreadsheet) Write(ctx context.Context, area string, values [][]string) error {
	rq := sheets.ValueRange{
		Range:  area,
		Values: grid(values),
	}

	if err := s.service.UpdateValues(ctx, s.id, area, &rq); err != nil {
		return transport("write range", err)
	}

	return nil
}

// Append inserts the rows after the last row of the table in the range.
func (s *Spreadsheet) Append(ctx context.Context, area string, values [][]string) error {
	rq := sheets.ValueRange{
		Range:  area,
		Values: grid(values),
	}

	if err := s.service.AppendValues(ctx, s.id, area, &rq); err != nil {
		return transport("append rows", err)
	}

	return nil
}

// WriteColumn writes the values down column col, starting at startRow.
func (s *Spreadsheet) WriteColumn(ctx context.Context, col, startRow int, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no values to write to column %v", address.ErrInvalidInput, col)
	}

	area, err := address.FormatCell(startRow, col)
	if err != nil {
		return err
	}

	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}

	rq := sheets.ValueRange{
		Range:          area,
		MajorDimension: COLUMNS,
		Values:         grid(rows),
	}

	if err := s.service.UpdateValues(ctx, s.id, area, &rq); err != nil {
		return transport("write column", err)
	}

	return nil
}

// WriteRow writes the values across row, starting at startCol.
func (s *Spreadsheet) WriteRow(ctx context.Context, row, startCol int, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no values to write to row %v", address.ErrInvalidInput, row)
	}

	area, err := address.FormatSpan(row, startCol, row, startCol+len(values)-1)
	if err != nil {
		return err
	}

	rq := sheets.ValueRange{
		Range:          area,
		MajorDimension: ROWS,
		Values:         grid([][]string{values}),
	}

	if err := s.service.UpdateValues(ctx, s.id, area, &rq); err != nil {
		return transport("write row", err)
	}

	return nil
}

// Clear clears the values (but not the formatting) in the ranges.
func (s *Spreadsheet) Clear(ctx context.Context, ranges ...string) error {
	if len(ranges) == 0 {
		return nil
	}

	if err := s.service.ClearValues(ctx, s.id, ranges); err != nil {
		return transport("clear ranges", err)
	}

	return nil
}

// RenameSheet changes the title of the default worksheet (sheet ID 0).
func (s *Spreadsheet) RenameSheet(ctx context.Context, title string) error {
	return s.rename(ctx, 0, title)
}

// RenameWorksheet changes the title of the worksheet currently titled 'from'.
func (s *Spreadsheet) RenameWorksheet(ctx context.Context, from, to string) error {
	id, ok, err := s.SheetID(ctx, from)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: worksheet '%s'", ErrNotFound, from)
	}

	return s.rename(ctx, id, to)
}

func (s *Spreadsheet) rename(ctx context.Context, id int64, title string) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
					Properties: &sheets.SheetProperties{
						SheetId:         id,
						Title:           title,
						ForceSendFields: []string{"SheetId"},
					},
					Fields: "title",
				},
			},
		},
	}

	if _, err := s.service.BatchUpdate(ctx, s.id, &rq); err != nil {
		return transport("rename sheet", err)
	}

	return nil
}

// CreateSheet adds a worksheet with the title and returns the sheet ID assigned
// to it. The returned bool is false if the reply did not include the new sheet's
// properties.
func (s *Spreadsheet) CreateSheet(ctx context.Context, title string) (int64, bool, error) {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
					},
				},
			},
		},
	}

	response, err := s.service.BatchUpdate(ctx, s.id, &rq)
	if err != nil {
		return 0, false, transport("create sheet", err)
	}

	if response != nil {
		for _, reply := range response.Replies {
			if reply != nil && reply.AddSheet != nil && reply.AddSheet.Properties != nil {
				return reply.AddSheet.Properties.SheetId, true, nil
			}
		}
	}

	return 0, false, nil
}

// FormatBackground sets the background colour of a single cell e.g. "C7" on the
// worksheet. A nil colour clears the background.
func (s *Spreadsheet) FormatBackground(ctx context.Context, worksheet string, cell string, color *sheets.Color) error {
	id, ok, err := s.SheetID(ctx, worksheet)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: worksheet '%s'", ErrNotFound, worksheet)
	}

	row, col, err := address.ParseCell(cell)
	if err != nil {
		return err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          id,
						StartRowIndex:    int64(row - 1),
						EndRowIndex:      int64(row),
						StartColumnIndex: int64(col - 1),
						EndColumnIndex:   int64(col),
						ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							BackgroundColor: color,
						},
					},
					Fields: "userEnteredFormat(backgroundColor)",
				},
			},
		},
	}

	if _, err := s.service.BatchUpdate(ctx, s.id, &rq); err != nil {
		return transport("format cell", err)
	}

	return nil
}

func grid(values [][]string) [][]any {
	rows := make([][]any, len(values))
	for i, row := range values {
		rows[i] = make([]any, len(row))
		for j, v := range row {
			rows[i][j] = v
		}
	}

	return rows
}
