package spreadsheet

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

const (
	RAW         = "RAW"
	INSERT_ROWS = "INSERT_ROWS"
	ROWS        = "ROWS"
	COLUMNS     = "COLUMNS"
)

// Service is the subset of the Google Sheets API used by a Spreadsheet.
//
// UpdateValues writes values verbatim (RAW) over the existing cells and AppendValues
// writes values verbatim (RAW) into newly inserted rows (INSERT_ROWS).
type Service interface {
	Get(ctx context.Context, spreadsheet string) (*sheets.Spreadsheet, error)
	GetValues(ctx context.Context, spreadsheet string, area string) (*sheets.ValueRange, error)
	UpdateValues(ctx context.Context, spreadsheet string, area string, values *sheets.ValueRange) error
	AppendValues(ctx context.Context, spreadsheet string, area string, values *sheets.ValueRange) error
	BatchUpdate(ctx context.Context, spreadsheet string, rq *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error)
	ClearValues(ctx context.Context, spreadsheet string, ranges []string) error
}

type google struct {
	service *sheets.Service
}

// NewGoogleService wraps an authenticated Google Sheets v4 client as a Service.
func NewGoogleService(service *sheets.Service) Service {
	return &google{
		service: service,
	}
}

func (g *google) Get(ctx context.Context, spreadsheet string) (*sheets.Spreadsheet, error) {
	return g.service.Spreadsheets.Get(spreadsheet).Context(ctx).Do()
}

func (g *google) GetValues(ctx context.Context, spreadsheet string, area string) (*sheets.ValueRange, error) {
	return g.service.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
}

func (g *google) UpdateValues(ctx context.Context, spreadsheet string, area string, values *sheets.ValueRange) error {
	_, err := g.service.Spreadsheets.Values.Update(spreadsheet, area, values).
		ValueInputOption(RAW).
		Context(ctx).
		Do()

	return err
}

func (g *google) AppendValues(ctx context.Context, spreadsheet string, area string, values *sheets.ValueRange) error {
	_, err := g.service.Spreadsheets.Values.Append(spreadsheet, area, values).
		ValueInputOption(RAW).
		InsertDataOption(INSERT_ROWS).
		Context(ctx).
		Do()

	return err
}

func (g *google) BatchUpdate(ctx context.Context, spreadsheet string, rq *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	return g.service.Spreadsheets.BatchUpdate(spreadsheet, rq).Context(ctx).Do()
}

func (g *google) ClearValues(ctx context.Context, spreadsheet string, ranges []string) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	_, err := g.service.Spreadsheets.Values.BatchClear(spreadsheet, &rq).Context(ctx).Do()

	return err
}
